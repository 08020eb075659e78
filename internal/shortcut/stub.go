package shortcut

import (
	"errors"
	"os"
)

// stubExecutableName is the fixed name the GUI bundle descriptor declares as
// its executable; the located platform stub is copied under this name.
const stubExecutableName = "Application Stub"

// automatorStubPaths are the known locations of the Automator application
// stub binary, probed in order. The set varies across macOS releases, which
// is why more than one candidate exists.
var automatorStubPaths = []string{
	"/System/Library/CoreServices/Automator Application Stub.app/Contents/MacOS/Automator Application Stub",
	"/System/Library/CoreServices/Automator Launcher.app/Contents/MacOS/Automator Launcher",
}

// ErrStubNotFound indicates that no Automator application stub exists on
// this host, so GUI shortcuts cannot be built. Terminal shortcuts still work.
var ErrStubNotFound = errors.New("could not find the Automator application stub; this macOS version may not be supported, use a terminal shortcut instead")

// locateStub returns the first existing candidate stub path, or
// ErrStubNotFound when none of them exist.
func locateStub(candidates []string) (string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrStubNotFound
}
