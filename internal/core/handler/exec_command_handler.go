package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"devspace/internal/cli/output"
	"devspace/internal/core/domain"
	"devspace/internal/ports"
)

type ExecOptions struct {
	// Timeout bounds the run when positive.
	Timeout time.Duration
	// Input is written to stdin when HasInput is set. An empty Input still
	// gets a closed stdin.
	Input      string
	HasInput   bool
	Background bool
	// Shell joins the arguments into one script for the platform shell.
	Shell bool
}

func (o ExecOptions) validate() error {
	if o.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}
	if o.Background {
		switch {
		case o.HasInput:
			return errors.New("--input cannot be combined with --background")
		case o.Timeout > 0:
			return errors.New("--timeout cannot be combined with --background")
		case o.Shell:
			return errors.New("--shell cannot be combined with --background")
		}
	}
	if o.HasInput && o.Timeout > 0 {
		return errors.New("--input cannot be combined with --timeout")
	}
	return nil
}

type ExecCommandHandler struct {
	commandRunner ports.CommandRunner
	stdout        io.Writer
}

func ProvideExecCommandHandler(commandRunner ports.CommandRunner) ExecCommandHandler {
	return ExecCommandHandler{
		commandRunner: commandRunner,
		stdout:        os.Stdout,
	}
}

// Handle runs args with the runner operation selected by opts and prints
// the captured stdout.
func (h *ExecCommandHandler) Handle(ctx context.Context, args []string, opts ExecOptions) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}
	if err := opts.validate(); err != nil {
		return err
	}

	if opts.Background {
		process, err := h.commandRunner.StartBackground(args[0], args[1:]...)
		if err != nil {
			return err
		}
		message := fmt.Sprintf("Started %s in background (pid %d)", process.Invocation(), process.Pid())
		if path := process.OutputPath(); path != "" {
			message += ", output in " + path
		}
		output.PrintSuccess(message)
		return nil
	}

	inv := domain.Command(args[0], args[1:]...)
	if opts.Shell {
		inv = domain.Shell(strings.Join(args, " "))
	}

	var result *domain.ExecutionResult
	var err error
	switch {
	case opts.Timeout > 0:
		var timed *domain.TimedResult
		timed, err = h.commandRunner.ExecuteWithTimeout(ctx, inv, opts.Timeout)
		if err == nil && timed.TimedOut {
			output.PrintWarning(fmt.Sprintf("%s did not finish within %s and was killed", inv, opts.Timeout))
			return fmt.Errorf("%w after %s: %s", domain.ErrTimedOut, opts.Timeout, inv)
		}
		if err == nil {
			result = timed.Result
		}
	case opts.HasInput:
		result, err = h.commandRunner.ExecuteWithInput(ctx, inv, opts.Input)
	default:
		result, err = h.commandRunner.Execute(ctx, inv)
	}
	if err != nil {
		var failed *domain.CommandFailedError
		if errors.As(err, &failed) {
			fmt.Fprint(h.stdout, failed.Stdout)
		}
		return err
	}

	fmt.Fprint(h.stdout, result.Stdout)
	return nil
}
