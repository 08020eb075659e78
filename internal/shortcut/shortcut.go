// Package shortcut builds double-clickable macOS application bundles that
// wrap an arbitrary script or command. A bundle either opens the command in
// Terminal.app via a small osascript launcher, or runs it in the background
// through the system's Automator application stub.
package shortcut

import (
	"fmt"
	"os"
	"path/filepath"

	"deskcut/internal/folders"
	"deskcut/internal/logger"
)

// Builder creates shortcut bundles under the user's desktop directory. The
// zero value is not usable; construct one with New. StubPaths defaults to
// the known system locations and exists as a field so tests can point the
// GUI strategy at a fixture.
type Builder struct {
	Folders   folders.UserFolders
	StubPaths []string
}

// New returns a Builder placing bundles under the given user folders.
func New(f folders.UserFolders) *Builder {
	return &Builder{
		Folders:   f,
		StubPaths: automatorStubPaths,
	}
}

// Build assembles the shortcut bundle described by opts and returns the
// resolved record, or (nil, nil) when opts.Desktop is false.
//
// The pipeline is fully synchronous: command assembly, skeleton creation,
// strategy artifacts, icon install, then best-effort post-processing. An
// existing bundle of the same name is deleted and rebuilt in place, so a
// concurrent reader can observe a half-built bundle; concurrent builds of
// the same name are not supported.
func (b *Builder) Build(opts Options) (*Record, error) {
	if !opts.Desktop {
		return nil, nil
	}

	d := normalize(opts, b.Folders.Desktop)
	if d.name == "" {
		return nil, fmt.Errorf("shortcut has no name and none could be derived from script %q", opts.Script)
	}

	command := assembleCommand(d)
	logger.Debug("[DEBUG] Assembled command for %s: %s\n", d.name, command)

	if err := os.MkdirAll(d.desktopDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create desktop directory %s: %w", d.desktopDir, err)
	}

	dest := filepath.Join(d.desktopDir, d.name+".app")
	target, err := makeSkeleton(dest)
	if err != nil {
		return nil, err
	}

	var strategy launchStrategy
	if d.terminal {
		strategy = terminalStrategy{}
	} else {
		strategy = guiStrategy{stubPaths: b.StubPaths}
	}
	if err := strategy.writeArtifacts(d, command, target); err != nil {
		return nil, err
	}

	icon, err := installIcon(d, target)
	if err != nil {
		return nil, err
	}

	postProcess(dest, !d.terminal)

	logger.Info("[INFO] Created shortcut %s\n", dest)
	return &Record{
		Path:    dest,
		Name:    d.name,
		Command: command,
		Icon:    icon,
	}, nil
}
