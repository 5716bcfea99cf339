package ports

import (
	"context"
	"os"
	"time"

	"devspace/internal/core/domain"
)

// CommandRunner executes external processes and captures their output.
// A non-zero exit status is reported as *domain.CommandFailedError, a process
// that could not be started as *domain.LaunchFailedError.
type CommandRunner interface {
	Execute(ctx context.Context, inv domain.Invocation) (*domain.ExecutionResult, error)
	// ExecuteArgs runs name with args without a shell and waits for it.
	ExecuteArgs(ctx context.Context, name string, args ...string) (*domain.ExecutionResult, error)
	// StartBackground starts name with args and returns as soon as the process
	// is running. The caller owns the returned process.
	StartBackground(name string, args ...string) (BackgroundProcess, error)
	// ExecuteWithInput writes input to the process's stdin and closes it.
	ExecuteWithInput(ctx context.Context, inv domain.Invocation, input string) (*domain.ExecutionResult, error)
	// ExecuteWithTimeout kills the process once timeout elapses. A timeout is
	// reported through TimedResult.TimedOut, never as an error.
	ExecuteWithTimeout(ctx context.Context, inv domain.Invocation, timeout time.Duration) (*domain.TimedResult, error)
	// ExecutePipeline connects each stage's stdout to the next stage's stdin
	// and reports the result of the last stage only.
	ExecutePipeline(ctx context.Context, invs []domain.Invocation) (*domain.ExecutionResult, error)
}

// BackgroundProcess is a started process handed over to the caller. Nothing
// else reaps or signals it.
type BackgroundProcess interface {
	Pid() int
	RunID() string
	Invocation() domain.Invocation
	// OutputPath is the file receiving stdout and stderr, empty when the
	// output is discarded.
	OutputPath() string
	Signal(sig os.Signal) error
	Kill() error
	Wait() error
}
