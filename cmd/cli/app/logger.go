package app

import "log/slog"

// ProvideLogger hands out the process-wide logger configured by the root command.
func ProvideLogger() *slog.Logger {
	return slog.Default()
}
