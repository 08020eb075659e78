package main

import (
	"deskcut/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The deskcut project creates native, double-clickable macOS application
// bundles that wrap an arbitrary script or command, so command-line programs
// can be started from the desktop without opening a terminal by hand:
//   - Builds a <Name>.app bundle on the Desktop with the standard
//     Contents/{MacOS,Resources} layout, an Info.plist, and an icon
//   - Terminal shortcuts get a small osascript launcher that opens
//     Terminal.app and types the wrapped command into it
//   - GUI shortcuts get an Automator workflow document plus a copy of the
//     system's Automator application stub, running the command in the
//     background with a stable bundle identity derived from the command
//   - Clears the download-quarantine marking and ad-hoc signs GUI bundles so
//     macOS does not block or misattribute first launches
//   - Reads either command-line flags (`create`) or a shortcuts.yaml batch
//     file (`sync`)
//
// Error handling strategy:
//   - Filesystem failures while building a bundle abort that shortcut and
//     surface the underlying cause
//   - A missing Automator stub fails GUI builds with a hint to use a
//     terminal shortcut instead
//   - Quarantine clearing and signing are best-effort; their failure only
//     degrades first-launch UX and never fails the build
func main() {
	cmd.Execute()
}
