package cmd

import (
	"github.com/spf13/cobra"

	"deskcut/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `deskcut`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "deskcut",                          // The name of the CLI tool
	Short: "macOS desktop shortcut generator", // Short description shown in help output

	// PersistentPreRun runs before any subcommand and initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts command
// execution. It's the entry point for the CLI when invoked by the user.
func Execute() {
	// Register the global --debug flag before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(foldersCmd)

	// Cobra reports errors itself; nothing useful to do with the return.
	_ = rootCmd.Execute()
}
