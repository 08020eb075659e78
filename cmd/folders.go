package cmd

import (
	"github.com/spf13/cobra"

	"deskcut/internal/folders"
	"deskcut/internal/logger"
)

// foldersCmd prints the resolved user folders shortcuts are placed under.
var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Show the resolved home and desktop folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		userFolders, err := folders.Resolve()
		if err != nil {
			return err
		}

		logger.Info("[INFO] Home:    %s\n", userFolders.Home)
		logger.Info("[INFO] Desktop: %s\n", userFolders.Desktop)
		return nil
	},
}
