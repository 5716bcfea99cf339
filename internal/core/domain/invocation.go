package domain

import (
	"fmt"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
)

// Invocation describes a single external process launch. Exactly one of the
// two modes is used: an argument vector (Name + Args) that is handed to the OS
// without a shell, or a Script that is interpreted by the platform shell.
type Invocation struct {
	Name   string
	Args   []string
	Script string
}

// Command builds an argument-vector invocation. Arguments are never joined or
// re-split, so shell metacharacters stay literal.
func Command(name string, args ...string) Invocation {
	if len(args) == 0 {
		args = nil
	}
	return Invocation{Name: name, Args: args}
}

// Shell builds a shell-string invocation.
func Shell(script string) Invocation {
	return Invocation{Script: script}
}

// IsShell reports whether the invocation is interpreted by a shell.
func (i Invocation) IsShell() bool {
	return i.Script != ""
}

func (i Invocation) Validate() error {
	if i.Script != "" && i.Name != "" {
		return fmt.Errorf("%w: both a command name and a shell script were given", ErrInvalidInvocation)
	}
	if i.Script == "" && strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: empty command", ErrInvalidInvocation)
	}
	return nil
}

// String renders the invocation the way a user would type it.
func (i Invocation) String() string {
	if i.IsShell() {
		return i.Script
	}
	return shellescape.QuoteCommand(append([]string{i.Name}, i.Args...))
}

// ExecutionResult is what a finished process left behind. It is owned by the
// caller and never stored by the runner.
type ExecutionResult struct {
	RunID    string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Lines splits stdout into lines, ignoring a single trailing newline.
func (r *ExecutionResult) Lines() []string {
	out := strings.TrimSuffix(r.Stdout, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// TimedResult is the outcome of a time-bounded execution. When TimedOut is
// set the process was killed and Result is nil.
type TimedResult struct {
	Result   *ExecutionResult
	TimedOut bool
	Timeout  time.Duration
}
