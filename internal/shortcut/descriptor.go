package shortcut

import (
	"path/filepath"
	"strings"
)

// Options describes the shortcut to create. Script is the only required
// field; everything else is defaulted during normalization.
type Options struct {
	Script      string // Script path, may include trailing command-line arguments
	Name        string // Display name for the shortcut [script basename]
	Description string // Longer description [Name]
	Icon        string // Path to a .icns icon file [built-in icon]
	WorkingDir  string // Directory where to run the script in; "" means unspecified
	Folder      string // Subfolder of the Desktop for the bundle, created if missing
	Terminal    bool   // Whether to run inside Terminal.app
	Desktop     bool   // Whether to create the bundle at all; false is a no-op
	Executable  string // Executable to prefix the script with [current process executable]
	NoExe       bool   // Whether to use no executable (script is the entire command)
}

// Record is the resolved result of a successful build, returned to the
// caller. Path is the finished bundle directory on disk.
type Record struct {
	Path    string
	Name    string
	Command string
	Icon    string
}

// descriptor is the validated, normalized form of Options consumed by the
// rest of the pipeline. script/args come from splitting Options.Script on
// whitespace: the first token is the script path, the rest are arguments.
type descriptor struct {
	name        string
	description string
	icon        string
	workingDir  string
	script      string
	args        string
	desktopDir  string // Desktop root plus the optional subfolder
	terminal    bool
	executable  string
	noExe       bool
}

// unsafe characters stripped from shortcut names so the bundle directory is
// always creatable.
const unsafeNameChars = `/\:*?"<>|'`

// scrubName makes a display name safe to use as a directory name by
// replacing filesystem-hostile characters with underscores.
func scrubName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeNameChars, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}

// splitScript separates the script path from its trailing arguments. The
// caller-provided script is a single string; the first whitespace-separated
// token is the runnable target.
func splitScript(script string) (path, args string) {
	fields := strings.Fields(script)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// normalize fills in every defaulted Options field and resolves the
// destination directory under the given desktop root.
func normalize(opts Options, desktopRoot string) *descriptor {
	script, args := splitScript(opts.Script)

	name := opts.Name
	if name == "" {
		base := filepath.Base(script)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	name = scrubName(name)

	description := opts.Description
	if description == "" {
		description = name
	}

	desktopDir := desktopRoot
	if opts.Folder != "" {
		desktopDir = filepath.Join(desktopRoot, opts.Folder)
	}

	return &descriptor{
		name:        name,
		description: description,
		icon:        opts.Icon,
		workingDir:  opts.WorkingDir,
		script:      script,
		args:        args,
		desktopDir:  desktopDir,
		terminal:    opts.Terminal,
		executable:  opts.Executable,
		noExe:       opts.NoExe,
	}
}
