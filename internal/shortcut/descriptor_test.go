package shortcut

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaultsNameFromScript(t *testing.T) {
	d := normalize(Options{Script: "/usr/local/bin/backup.sh --all"}, "/home/u/Desktop")

	assert.Equal(t, "backup", d.name, "name defaults to the script basename without extension")
	assert.Equal(t, "backup", d.description, "description defaults to the name")
	assert.Equal(t, "/usr/local/bin/backup.sh", d.script)
	assert.Equal(t, "--all", d.args)
}

func TestNormalizeScrubsUnsafeName(t *testing.T) {
	d := normalize(Options{Script: "/bin/true", Name: `My "Job": a/b`}, "/home/u/Desktop")

	assert.Equal(t, "My _Job__ a_b", d.name)
}

func TestNormalizeFolderPlacesBundleInSubdir(t *testing.T) {
	d := normalize(Options{Script: "/bin/true", Folder: "Tools"}, "/home/u/Desktop")

	assert.Equal(t, filepath.Join("/home/u/Desktop", "Tools"), d.desktopDir)
}

func TestNormalizeKeepsExplicitFields(t *testing.T) {
	d := normalize(Options{
		Script:      "/bin/true",
		Name:        "Thing",
		Description: "runs a thing",
		WorkingDir:  "/tmp",
	}, "/home/u/Desktop")

	assert.Equal(t, "Thing", d.name)
	assert.Equal(t, "runs a thing", d.description)
	assert.Equal(t, "/tmp", d.workingDir)
}

func TestSplitScriptEmpty(t *testing.T) {
	path, args := splitScript("   ")

	assert.Empty(t, path)
	assert.Empty(t, args)
}
