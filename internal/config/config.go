package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Shortcut describes one desktop shortcut to create, as declared in
// shortcuts.yaml. Boolean fields that default to true (terminal, desktop) are
// pointers so that "not set" can be told apart from an explicit false.
type Shortcut struct {
	Script      string `yaml:"script"`      // Command to wrap: script path plus optional trailing arguments
	Name        string `yaml:"name"`        // Display name; defaults to the script basename
	Description string `yaml:"description"` // Longer description; defaults to the name
	Icon        string `yaml:"icon"`        // Path to a .icns file; defaults to the built-in icon
	WorkingDir  string `yaml:"working_dir"` // Directory the launched process should run in
	Folder      string `yaml:"folder"`      // Optional subfolder of the Desktop for the bundle
	Terminal    *bool  `yaml:"terminal"`    // Launch inside Terminal.app [true]
	Desktop     *bool  `yaml:"desktop"`     // Create the bundle on the Desktop at all [true]
	Executable  string `yaml:"executable"`  // Interpreter to prefix the script with
	NoExe       bool   `yaml:"no_exe"`      // Use no executable prefix (script is the entire command)
}

// InTerminal reports the effective terminal flag, applying the default.
func (s Shortcut) InTerminal() bool {
	return s.Terminal == nil || *s.Terminal
}

// OnDesktop reports the effective desktop flag, applying the default.
func (s Shortcut) OnDesktop() bool {
	return s.Desktop == nil || *s.Desktop
}

// LoadShortcuts reads a shortcuts.yaml file and returns the declared
// shortcut entries. An unreadable or malformed file is a fatal setup error.
func LoadShortcuts(path string) []Shortcut {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic("Failed to read " + path + ": " + err.Error())
	}

	var wrapper struct {
		Shortcuts []Shortcut `yaml:"shortcuts"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		panic("Failed to unmarshal " + path + ": " + err.Error())
	}

	return wrapper.Shortcuts
}
