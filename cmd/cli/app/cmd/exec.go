package cmd

import (
	"devspace/cmd/cli/app"
	"devspace/internal/core/handler"

	"github.com/spf13/cobra"
)

var execOptions handler.ExecOptions

func init() {
	execCmd.Flags().DurationVar(&execOptions.Timeout, "timeout", 0, "kill the command if it runs longer than this")
	execCmd.Flags().StringVar(&execOptions.Input, "input", "", "text written to the command's stdin")
	execCmd.Flags().BoolVar(&execOptions.Background, "background", false, "start the command detached and return immediately")
	execCmd.Flags().BoolVar(&execOptions.Shell, "shell", false, "join the arguments and run them through the shell")
	rootCmd.AddCommand(execCmd)
}

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- <command> [args...]",
	Short: "Runs a command",
	Long: `Runs a command and prints its standard output. Without --shell the
arguments are passed to the program as they are, so shell metacharacters
stay literal.`,
	Example: `  # Feed stdin
  devspace exec --input "$(cat notes.txt)" -- wc -l

  # Give up after five seconds
  devspace exec --timeout 5s -- curl -s https://example.com

  # Start a program detached
  devspace exec --background -- alacritty`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectExecCommandHandler()
		if err != nil {
			return err
		}

		opts := execOptions
		opts.HasInput = cmd.Flags().Changed("input")
		return handler.Handle(cmd.Context(), args, opts)
	},
}
