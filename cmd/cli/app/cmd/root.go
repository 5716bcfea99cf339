package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"devspace/internal/cli/output"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "devspace",
	Short: "Lays out a Hyprland development desktop",
	Long: `devspace opens your editor and terminal on their own Hyprland workspaces
and gives direct access to the command runner behind it.

Configuration is read from ~/.devspace.yaml when present. Run
'devspace initialize' to write one with the default values.

Common workflows:
  devspace start                     Open the editor, then the terminal
  devspace workspace 3               Switch to workspace 3
  devspace exec --timeout 5s -- make Run a command with a time limit
  devspace pipe 'ls' 'wc -l'         Run a shell pipeline`,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every command that is run")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
