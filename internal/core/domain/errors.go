package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInvocation = errors.New("invalid invocation")
	ErrLaunchFailed      = errors.New("launch failed")
	ErrCommandFailed     = errors.New("command failed")
	ErrTimedOut          = errors.New("timed out")
	ErrInvalidWorkspace  = errors.New("invalid workspace number")
)

// LaunchFailedError means the OS refused to start the process, for example
// because the executable does not exist or is not executable.
type LaunchFailedError struct {
	Invocation Invocation
	Err        error
}

func (e *LaunchFailedError) Error() string {
	return fmt.Sprintf("launch failed: %s: %v", e.Invocation, e.Err)
}

func (e *LaunchFailedError) Unwrap() error {
	return e.Err
}

func (e *LaunchFailedError) Is(target error) bool {
	return target == ErrLaunchFailed
}

// CommandFailedError means the process ran and exited with a non-zero status.
type CommandFailedError struct {
	Invocation Invocation
	ExitCode   int
	Stdout     string
	Stderr     string
}

func (e *CommandFailedError) Error() string {
	msg := fmt.Sprintf("command failed: %s (exit code %d)", e.Invocation, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandFailedError) Is(target error) bool {
	return target == ErrCommandFailed
}
