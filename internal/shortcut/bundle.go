package shortcut

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// bundleTarget is the resolved destination of a build: an absolute directory
// ending in ".app" plus its required substructure.
type bundleTarget struct {
	path string
}

func (t bundleTarget) contents() string  { return filepath.Join(t.path, "Contents") }
func (t bundleTarget) macOS() string     { return filepath.Join(t.path, "Contents", "MacOS") }
func (t bundleTarget) resources() string { return filepath.Join(t.path, "Contents", "Resources") }

// makeSkeleton creates the bundle directory structure at dest. Any existing
// entry at dest is removed recursively first, so repeated builds of the same
// shortcut never leave stale files behind. Two concurrent builds of the same
// name race on this delete-then-recreate; callers must not do that.
func makeSkeleton(dest string) (bundleTarget, error) {
	if _, err := os.Lstat(dest); err == nil {
		if err := os.RemoveAll(dest); err != nil {
			return bundleTarget{}, fmt.Errorf("failed to remove existing bundle %s: %w", dest, err)
		}
	}

	target := bundleTarget{path: dest}
	for _, dir := range []string{dest, target.contents(), target.macOS(), target.resources()} {
		if err := os.Mkdir(dir, 0755); err != nil {
			return bundleTarget{}, fmt.Errorf("failed to create bundle directory %s: %w", dir, err)
		}
	}

	return target, nil
}

// copyFile copies a file from src to dst. When modeOverride is non-zero the
// destination gets that mode, otherwise the source mode is preserved.
func copyFile(src, dst string, modeOverride os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	if modeOverride != 0 {
		err = os.Chmod(dst, modeOverride)
	} else if stat, err2 := os.Stat(src); err2 == nil {
		err = os.Chmod(dst, stat.Mode())
	}
	return err
}
