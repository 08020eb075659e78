package shortcut

import (
	"os"
	"path/filepath"
	"strings"

	"deskcut/internal/logger"
)

// defaultExecutable resolves the executable used to prefix scripts when the
// descriptor names none: the binary running right now. An empty string is
// returned when the lookup fails, which downgrades the command to the bare
// script.
func defaultExecutable() string {
	exe, err := os.Executable()
	if err != nil {
		logger.Debug("[DEBUG] Failed to resolve own executable: %v\n", err)
		return ""
	}
	return exe
}

// assembleCommand derives the final shell-invocable command string from a
// normalized descriptor and records the resolved executable back onto it.
//
// Rules:
//   - noExe set: the command is the script (plus arguments) alone and any
//     configured executable is cleared.
//   - otherwise the executable (defaulted if empty) is resolved to an
//     absolute path; when it resolves equal to the script path itself it is
//     dropped, so a directly-runnable script is not invoked as "exe exe args".
//
// No escaping happens here; each metadata writer escapes for its own format.
func assembleCommand(d *descriptor) string {
	if d.noExe {
		d.executable = ""
		return joinCommand("", d.script, d.args)
	}

	exe := d.executable
	if exe == "" {
		exe = defaultExecutable()
	}
	if exe != "" {
		exe = absPath(exe)
		if exe == absPath(d.script) {
			exe = ""
		}
	}
	d.executable = exe

	return joinCommand(exe, d.script, d.args)
}

// joinCommand space-joins the non-empty command parts.
func joinCommand(exe, script, args string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{exe, script, args} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// absPath is a pure path normalization: relative paths are anchored at the
// current working directory, nothing is required to exist.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
