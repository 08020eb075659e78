package folders

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// UserFolders holds the resolved user-specific folders relevant to shortcut
// placement. StartMenu is always empty on macOS; it exists so callers that
// also target other platforms can share one shape.
type UserFolders struct {
	Home      string
	Desktop   string
	StartMenu string
}

// Resolve looks up the current user's home directory and derives the desktop
// directory from it (home/Desktop). It performs pure lookups only; no
// directories are created.
func Resolve() (UserFolders, error) {
	home, err := homedir.Dir()
	if err != nil {
		return UserFolders{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return UserFolders{
		Home:      home,
		Desktop:   filepath.Join(home, "Desktop"),
		StartMenu: "", // no start menu concept on macOS
	}, nil
}
