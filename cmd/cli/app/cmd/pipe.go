package cmd

import (
	"devspace/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pipeCmd)
}

var pipeCmd = &cobra.Command{
	Use:   "pipe <stage> [stage...]",
	Short: "Runs shell commands as a pipeline",
	Long: `Runs each argument through the shell, feeding the output of one stage
into the next. Only the last stage decides success, and only its output
is printed.`,
	Example:      `  devspace pipe "echo 'Hello World'" "grep World" "wc -c"`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPipeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), args)
	},
}
