package shortcut

import (
	"fmt"
	"os"
	"path/filepath"

	"deskcut/internal/assets"
)

// installIcon places the shortcut's icon at Contents/Resources/<Name>.icns,
// where both bundle descriptor variants reference it by name. When the
// descriptor names no icon file, the embedded default is written instead.
// Returns the path of the installed icon.
func installIcon(d *descriptor, target bundleTarget) (string, error) {
	dest := filepath.Join(target.resources(), d.name+".icns")

	if d.icon == "" {
		if err := os.WriteFile(dest, assets.DefaultIcon, 0644); err != nil {
			return "", fmt.Errorf("failed to write default icon: %w", err)
		}
		return dest, nil
	}

	if err := copyFile(d.icon, dest, 0); err != nil {
		return "", fmt.Errorf("failed to install icon %s: %w", d.icon, err)
	}
	return dest, nil
}
