package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleCommandNoExe(t *testing.T) {
	d := &descriptor{
		script:     "/usr/bin/myjob",
		args:       "--x 1",
		executable: "/usr/bin/python3",
		noExe:      true,
	}

	cmd := assembleCommand(d)

	assert.Equal(t, "/usr/bin/myjob --x 1", cmd)
	assert.Empty(t, d.executable, "noExe must clear the executable")
}

func TestAssembleCommandDropsExecutableEqualToScript(t *testing.T) {
	d := &descriptor{
		script:     "/usr/bin/myjob",
		args:       "--x 1",
		executable: "/usr/bin/myjob",
	}

	cmd := assembleCommand(d)

	assert.Equal(t, "/usr/bin/myjob --x 1", cmd, "duplicate executable must be omitted")
	assert.Empty(t, d.executable)
}

func TestAssembleCommandPrefixesExecutable(t *testing.T) {
	d := &descriptor{
		script:     "/home/user/job.py",
		args:       "--fast",
		executable: "/usr/bin/python3",
	}

	cmd := assembleCommand(d)

	assert.Equal(t, "/usr/bin/python3 /home/user/job.py --fast", cmd)
	assert.Equal(t, "/usr/bin/python3", d.executable)
}

func TestAssembleCommandDefaultsToOwnExecutable(t *testing.T) {
	d := &descriptor{
		script: "/home/user/job.py",
	}

	cmd := assembleCommand(d)

	// The test binary itself is the default executable.
	assert.NotEmpty(t, d.executable)
	assert.Equal(t, d.executable+" /home/user/job.py", cmd)
}

func TestAssembleCommandNoArguments(t *testing.T) {
	d := &descriptor{
		script: "/usr/bin/myjob",
		noExe:  true,
	}

	assert.Equal(t, "/usr/bin/myjob", assembleCommand(d))
}
