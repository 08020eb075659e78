package shortcut

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"
)

// bundleIDNamespace prefixes every generated bundle identifier so shortcut
// identities never collide with real installed applications.
const bundleIDNamespace = "com.deskcut"

// terminalInfoPlist is the minimal bundle descriptor for terminal-launched
// shortcuts, whose executable is the generated osascript launcher.
type terminalInfoPlist struct {
	GetInfoString string `plist:"CFBundleGetInfoString"`
	Name          string `plist:"CFBundleName"`
	Executable    string `plist:"CFBundleExecutable"`
	IconFile      string `plist:"CFBundleIconFile"`
	PackageType   string `plist:"CFBundlePackageType"`
}

// guiInfoPlist is the bundle descriptor for Automator-stub shortcuts. The
// executable name is fixed: the copied platform stub, not a custom binary.
type guiInfoPlist struct {
	DevelopmentRegion     string `plist:"CFBundleDevelopmentRegion"`
	Executable            string `plist:"CFBundleExecutable"`
	IconFile              string `plist:"CFBundleIconFile"`
	Identifier            string `plist:"CFBundleIdentifier"`
	InfoDictionaryVersion string `plist:"CFBundleInfoDictionaryVersion"`
	Name                  string `plist:"CFBundleName"`
	PackageType           string `plist:"CFBundlePackageType"`
	ShortVersionString    string `plist:"CFBundleShortVersionString"`
	Signature             string `plist:"CFBundleSignature"`
	Version               string `plist:"CFBundleVersion"`
	MinimumSystemVersion  string `plist:"LSMinimumSystemVersion"`
	UIElement             bool   `plist:"LSUIElement"`
	MainNibFile           string `plist:"NSMainNibFile"`
	PrincipalClass        string `plist:"NSPrincipalClass"`
}

// workflowDocument mirrors the Automator document.wflow schema. The schema
// must match the automation host's format exactly or the bundle is treated
// as corrupt, so every AM* field carries the values Automator itself writes.
type workflowDocument struct {
	ApplicationBuild   string          `plist:"AMApplicationBuild"`
	ApplicationVersion string          `plist:"AMApplicationVersion"`
	DocumentVersion    string          `plist:"AMDocumentVersion"`
	Actions            []workflowEntry `plist:"actions"`
}

type workflowEntry struct {
	Action workflowAction `plist:"action"`
}

type workflowAction struct {
	ActionVersion       string           `plist:"AMActionVersion"`
	Application         []string         `plist:"AMApplication"`
	ParameterProperties map[string]any   `plist:"AMParameterProperties"`
	Provides            workflowProvides `plist:"AMProvides"`
	ActionBundlePath    string           `plist:"ActionBundlePath"`
	ActionName          string           `plist:"ActionName"`
	ActionParameters    shellParameters  `plist:"ActionParameters"`
	BundleIdentifier    string           `plist:"BundleIdentifier"`
}

type workflowProvides struct {
	Container string   `plist:"Container"`
	Types     []string `plist:"Types"`
}

type shellParameters struct {
	CommandString    string `plist:"COMMAND_STRING"`
	UserDefaultShell bool   `plist:"CheckedForUserDefaultShell"`
	InputMethod      int    `plist:"inputMethod"`
	Shell            string `plist:"shell"`
	Source           string `plist:"source"`
}

// bundleIdentifier derives the stable identity string for a GUI shortcut
// from its name and assembled command. The same name and command always
// yield the same identifier across rebuilds, so macOS permission grants
// survive regeneration; changing the command changes the identity.
func bundleIdentifier(name, command string) string {
	sum := md5.Sum([]byte(command))
	return fmt.Sprintf("%s.%s-%s", bundleIDNamespace, name, hex.EncodeToString(sum[:])[:8])
}

// writeTerminalInfoPlist renders Contents/Info.plist for a terminal shortcut.
func writeTerminalInfoPlist(d *descriptor, target bundleTarget) error {
	info := terminalInfoPlist{
		GetInfoString: d.description,
		Name:          d.name,
		Executable:    d.name,
		IconFile:      d.name,
		PackageType:   "APPL",
	}
	return writePlist(filepath.Join(target.contents(), "Info.plist"), info)
}

// writeGUIInfoPlist renders Contents/Info.plist for an Automator-stub
// shortcut, with the identity derived from the assembled command.
func writeGUIInfoPlist(d *descriptor, command string, target bundleTarget) error {
	info := guiInfoPlist{
		DevelopmentRegion:     "English",
		Executable:            stubExecutableName,
		IconFile:              d.name,
		Identifier:            bundleIdentifier(d.name, command),
		InfoDictionaryVersion: "6.0",
		Name:                  d.name,
		PackageType:           "APPL",
		ShortVersionString:    "1.0",
		Signature:             "????",
		Version:               "1.0",
		MinimumSystemVersion:  "10.5",
		UIElement:             false,
		MainNibFile:           "ApplicationStub",
		PrincipalClass:        "NSApplication",
	}
	return writePlist(filepath.Join(target.contents(), "Info.plist"), info)
}

// writeWorkflow renders Contents/Resources/document.wflow carrying a single
// Run Shell Script action. The command is backgrounded with its output
// discarded so the automation host does not block waiting on it. The plist
// encoder takes care of XML-escaping the command string.
func writeWorkflow(command string, target bundleTarget) error {
	doc := workflowDocument{
		ApplicationBuild:   "523",
		ApplicationVersion: "2.10",
		DocumentVersion:    "2",
		Actions: []workflowEntry{{
			Action: workflowAction{
				ActionVersion:       "1.0.2",
				Application:         []string{"Automator"},
				ParameterProperties: map[string]any{"source": map[string]any{}},
				Provides: workflowProvides{
					Container: "List",
					Types:     []string{"com.apple.applescript.object"},
				},
				ActionBundlePath: "/System/Library/Automator/Run Shell Script.action",
				ActionName:       "Run Shell Script",
				ActionParameters: shellParameters{
					CommandString:    command + " > /dev/null 2>&1 &",
					UserDefaultShell: true,
					InputMethod:      0,
					Shell:            "/bin/bash",
					Source:           "",
				},
				BundleIdentifier: "com.apple.RunShellScript",
			},
		}},
	}
	return writePlist(filepath.Join(target.resources(), "document.wflow"), doc)
}

// writePlist marshals v as indented XML plist and writes it to path.
func writePlist(path string, v any) error {
	data, err := plist.MarshalIndent(v, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal plist for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
