package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shortcuts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadShortcuts(t *testing.T) {
	path := writeConfig(t, `
shortcuts:
  - script: /usr/bin/myjob --x 1
    name: MyJob
    description: runs my job
    icon: /tmp/job.icns
    folder: Tools
    terminal: false
    executable: /usr/bin/python3
  - script: /usr/local/bin/backup.sh
    no_exe: true
`)

	shortcuts := LoadShortcuts(path)
	require.Len(t, shortcuts, 2)

	first := shortcuts[0]
	assert.Equal(t, "/usr/bin/myjob --x 1", first.Script)
	assert.Equal(t, "MyJob", first.Name)
	assert.Equal(t, "runs my job", first.Description)
	assert.Equal(t, "Tools", first.Folder)
	assert.False(t, first.InTerminal(), "explicit terminal: false must stick")
	assert.True(t, first.OnDesktop())
	assert.Equal(t, "/usr/bin/python3", first.Executable)

	second := shortcuts[1]
	assert.True(t, second.InTerminal(), "terminal defaults to true")
	assert.True(t, second.OnDesktop(), "desktop defaults to true")
	assert.True(t, second.NoExe)
}

func TestLoadShortcutsDesktopFalse(t *testing.T) {
	path := writeConfig(t, `
shortcuts:
  - script: /usr/bin/myjob
    desktop: false
`)

	shortcuts := LoadShortcuts(path)
	require.Len(t, shortcuts, 1)
	assert.False(t, shortcuts[0].OnDesktop())
}

func TestLoadShortcutsMissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		LoadShortcuts(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
