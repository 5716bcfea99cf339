package cmd

import (
	"fmt"
	"strconv"

	"devspace/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(workspaceCmd)
}

var workspaceCmd = &cobra.Command{
	Use:   "workspace <number>",
	Short: "Switches to a workspace",
	Long:  `Asks the workspace dispatcher to switch to the given workspace. A failed switch is reported as a warning and does not fail the command.`,
	Example: `  devspace workspace 10`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("workspace must be a number, got %q", args[0])
		}
		cmd.SilenceUsage = true

		handler, err := app.InjectWorkspaceCommandHandler()
		if err != nil {
			return err
		}

		handler.Handle(cmd.Context(), n)
		return nil
	},
}
