package cmd

import (
	"devspace/cmd/cli/app"

	"github.com/spf13/cobra"
)

var initializeForce bool

func init() {
	initializeCmd.Flags().BoolVarP(&initializeForce, "force", "f", false, "overwrite an existing configuration file without asking")
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Writes a configuration file with the default values",
	Long:  `Writes ~/.devspace.yaml with the default editor, terminal, workspaces and dispatcher. An existing file is kept unless you confirm or pass --force.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(initializeForce)
	},
}
