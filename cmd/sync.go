package cmd

import (
	"github.com/spf13/cobra"

	"deskcut/internal/config"
	"deskcut/internal/folders"
	"deskcut/internal/logger"
	"deskcut/internal/shortcut"
)

// configPath holds the path to the shortcuts YAML file.
// It's passed via the `--config` or `-c` flag.
var configPath string

// syncCmd creates every shortcut declared in the shortcuts YAML file.
// Failures on individual entries are logged and the remaining entries are
// still attempted, so one bad shortcut does not block the rest.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create all shortcuts declared in the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		userFolders, err := folders.Resolve()
		if err != nil {
			return err
		}

		shortcuts := config.LoadShortcuts(configPath)
		builder := shortcut.New(userFolders)

		for _, entry := range shortcuts {
			record, err := builder.Build(shortcut.Options{
				Script:      entry.Script,
				Name:        entry.Name,
				Description: entry.Description,
				Icon:        entry.Icon,
				WorkingDir:  entry.WorkingDir,
				Folder:      entry.Folder,
				Terminal:    entry.InTerminal(),
				Desktop:     entry.OnDesktop(),
				Executable:  entry.Executable,
				NoExe:       entry.NoExe,
			})
			if err != nil {
				logger.Error("[ERROR] Failed to create shortcut for %q: %v\n", entry.Script, err)
				continue
			}
			if record == nil {
				logger.Debug("[DEBUG] Skipped %q (desktop disabled)\n", entry.Script)
			}
		}
		return nil
	},
}

// init sets up CLI flags for the `sync` command.
func init() {
	syncCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "shortcuts.yaml", "Path to the shortcuts configuration file")
}
