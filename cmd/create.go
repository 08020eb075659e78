package cmd

import (
	"github.com/spf13/cobra"

	"deskcut/internal/folders"
	"deskcut/internal/logger"
	"deskcut/internal/shortcut"
)

// Flag values for the `create` command, mirroring the shortcut options.
var (
	createName        string
	createDescription string
	createIcon        string
	createWorkingDir  string
	createFolder      string
	createGUI         bool
	createNoDesktop   bool
	createExecutable  string
	createNoExe       bool
)

// createCmd builds a single desktop shortcut from command-line flags.
// The script (with any trailing arguments) is the positional argument.
var createCmd = &cobra.Command{
	Use:   "create <script and arguments>",
	Short: "Create one desktop shortcut for a script or command",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userFolders, err := folders.Resolve()
		if err != nil {
			return err
		}

		builder := shortcut.New(userFolders)
		record, err := builder.Build(shortcut.Options{
			Script:      joinArgs(args),
			Name:        createName,
			Description: createDescription,
			Icon:        createIcon,
			WorkingDir:  createWorkingDir,
			Folder:      createFolder,
			Terminal:    !createGUI,
			Desktop:     !createNoDesktop,
			Executable:  createExecutable,
			NoExe:       createNoExe,
		})
		if err != nil {
			return err
		}
		if record == nil {
			logger.Warn("[WARN] Desktop placement disabled; nothing was created\n")
			return nil
		}

		logger.Info("[INFO] Shortcut %s launches: %s\n", record.Path, record.Command)
		return nil
	},
}

// joinArgs reassembles the positional arguments into the single script
// string the shortcut package expects.
func joinArgs(args []string) string {
	script := args[0]
	for _, arg := range args[1:] {
		script += " " + arg
	}
	return script
}

// init sets up the CLI flags for the `create` command.
func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Display name for the shortcut (default: script basename)")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Longer description (default: name)")
	createCmd.Flags().StringVarP(&createIcon, "icon", "i", "", "Path to a .icns icon file (default: built-in icon)")
	createCmd.Flags().StringVarP(&createWorkingDir, "working-dir", "w", "", "Directory the launched process should run in")
	createCmd.Flags().StringVarP(&createFolder, "folder", "f", "", "Subfolder of the Desktop to place the shortcut in")
	createCmd.Flags().BoolVarP(&createGUI, "gui", "g", false, "Run in the background via the Automator stub instead of Terminal")
	createCmd.Flags().BoolVar(&createNoDesktop, "no-desktop", false, "Do not create the shortcut (dry no-op)")
	createCmd.Flags().StringVarP(&createExecutable, "executable", "x", "", "Executable to prefix the script with (default: this binary)")
	createCmd.Flags().BoolVar(&createNoExe, "no-exe", false, "Use no executable prefix; the script is the entire command")
}
