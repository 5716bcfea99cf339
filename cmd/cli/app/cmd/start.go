package cmd

import (
	"devspace/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Opens the editor and terminal on their workspaces",
	Long: `Switches to the editor workspace and runs the editor until its launcher
returns, waits for the window to settle, then switches to the terminal
workspace and starts the terminal in the background.

Workspace switches are best-effort: if the dispatcher fails, a warning is
shown and the applications are launched anyway.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectStartCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context())
	},
}
