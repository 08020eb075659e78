package shortcut

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestBundleIdentifierIsStable(t *testing.T) {
	a := bundleIdentifier("MyJob", "/usr/bin/myjob --x 1")
	b := bundleIdentifier("MyJob", "/usr/bin/myjob --x 1")

	assert.Equal(t, a, b, "same name and command must yield the same identity")
	assert.Contains(t, a, "com.deskcut.MyJob-")
}

func TestBundleIdentifierChangesWithCommand(t *testing.T) {
	a := bundleIdentifier("MyJob", "/usr/bin/myjob --x 1")
	b := bundleIdentifier("MyJob", "/usr/bin/myjob --x 2")

	assert.NotEqual(t, a, b, "changing any argument must change the identity")
}

func TestWriteWorkflowSchema(t *testing.T) {
	target, err := makeSkeleton(filepath.Join(t.TempDir(), "Job.app"))
	require.NoError(t, err)

	require.NoError(t, writeWorkflow("/usr/bin/myjob --x 1", target))

	raw, err := os.ReadFile(filepath.Join(target.resources(), "document.wflow"))
	require.NoError(t, err)

	var doc workflowDocument
	_, err = plist.Unmarshal(raw, &doc)
	require.NoError(t, err)

	require.Len(t, doc.Actions, 1)
	action := doc.Actions[0].Action
	assert.Equal(t, "Run Shell Script", action.ActionName)
	assert.Equal(t, "/System/Library/Automator/Run Shell Script.action", action.ActionBundlePath)
	assert.Equal(t, "/bin/bash", action.ActionParameters.Shell)
	assert.Equal(t, 0, action.ActionParameters.InputMethod)
	assert.Equal(t, "/usr/bin/myjob --x 1 > /dev/null 2>&1 &", action.ActionParameters.CommandString,
		"command must be backgrounded with output discarded")
}

func TestWriteTerminalInfoPlist(t *testing.T) {
	target, err := makeSkeleton(filepath.Join(t.TempDir(), "MyJob.app"))
	require.NoError(t, err)

	d := &descriptor{name: "MyJob", description: "my job"}
	require.NoError(t, writeTerminalInfoPlist(d, target))

	raw, err := os.ReadFile(filepath.Join(target.contents(), "Info.plist"))
	require.NoError(t, err)

	var info terminalInfoPlist
	_, err = plist.Unmarshal(raw, &info)
	require.NoError(t, err)

	assert.Equal(t, "MyJob", info.Name)
	assert.Equal(t, "MyJob", info.Executable, "terminal bundles execute the generated launcher")
	assert.Equal(t, "MyJob", info.IconFile)
	assert.Equal(t, "my job", info.GetInfoString)
	assert.Equal(t, "APPL", info.PackageType)
}

func TestWriteGUIInfoPlist(t *testing.T) {
	target, err := makeSkeleton(filepath.Join(t.TempDir(), "MyJob.app"))
	require.NoError(t, err)

	d := &descriptor{name: "MyJob", description: "my job"}
	require.NoError(t, writeGUIInfoPlist(d, "/usr/bin/myjob --x 1", target))

	raw, err := os.ReadFile(filepath.Join(target.contents(), "Info.plist"))
	require.NoError(t, err)

	var info guiInfoPlist
	_, err = plist.Unmarshal(raw, &info)
	require.NoError(t, err)

	assert.Equal(t, stubExecutableName, info.Executable, "GUI bundles execute the fixed stub name")
	assert.Equal(t, bundleIdentifier("MyJob", "/usr/bin/myjob --x 1"), info.Identifier)
	assert.Equal(t, "10.5", info.MinimumSystemVersion)
	assert.Equal(t, "NSApplication", info.PrincipalClass)
}
