package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deskcut/internal/logger"
)

// launchStrategy writes the strategy-specific launcher artifacts into the
// bundle: the metadata documents plus whatever lands in Contents/MacOS.
// Exactly one strategy runs per build.
type launchStrategy interface {
	writeArtifacts(d *descriptor, command string, target bundleTarget) error
}

// terminalStrategy produces an osascript launcher that opens Terminal.app
// and types the assembled command into it.
type terminalStrategy struct{}

func (terminalStrategy) writeArtifacts(d *descriptor, command string, target bundleTarget) error {
	if err := writeTerminalInfoPlist(d, target); err != nil {
		return err
	}

	// Double quotes inside the command must be backslash-escaped before
	// being embedded in the quoted AppleScript literal, or the generated
	// launcher is malformed.
	escaped := strings.ReplaceAll(command, `"`, `\"`)
	lines := []string{
		"#!/usr/bin/osascript",
		`tell application "Terminal"`,
		fmt.Sprintf(`    do script "%s"`, escaped),
		"end tell",
		"",
	}

	launcher := filepath.Join(target.macOS(), d.name)
	if err := os.WriteFile(launcher, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write launcher script: %w", err)
	}
	if err := os.Chmod(launcher, 0755); err != nil {
		return fmt.Errorf("failed to make launcher executable: %w", err)
	}

	logger.Debug("[DEBUG] Wrote terminal launcher %s\n", launcher)
	return nil
}

// guiStrategy produces an Automator-stub application: a workflow document
// carrying the command as a background shell action, a bundle descriptor
// with a stable identity, and a copy of the platform stub binary.
type guiStrategy struct {
	stubPaths []string
}

func (s guiStrategy) writeArtifacts(d *descriptor, command string, target bundleTarget) error {
	if err := writeWorkflow(command, target); err != nil {
		return err
	}
	if err := writeGUIInfoPlist(d, command, target); err != nil {
		return err
	}

	stub, err := locateStub(s.stubPaths)
	if err != nil {
		return err
	}

	dest := filepath.Join(target.macOS(), stubExecutableName)
	if err := copyFile(stub, dest, 0755); err != nil {
		return fmt.Errorf("failed to copy Automator stub into bundle: %w", err)
	}

	logger.Debug("[DEBUG] Copied Automator stub %s to %s\n", stub, dest)
	return nil
}
