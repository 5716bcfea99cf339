package handler

import (
	"bytes"
	"context"
	"testing"
	"time"

	"devspace/internal/core/domain"
	"devspace/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newExecHandler(commandRunner *testutil.MockCommandRunner) (ExecCommandHandler, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	sut := ProvideExecCommandHandler(commandRunner)
	sut.stdout = stdout
	return sut, stdout
}

func TestExecCommandHandler_RunsArgumentVector(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("Execute", domain.Command("echo", "a b", "c")).
		Return(&domain.ExecutionResult{Stdout: "a b c\n"}, nil)
	sut, stdout := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"echo", "a b", "c"}, ExecOptions{})

	require.NoError(t, err)
	assert.Equal(t, "a b c\n", stdout.String())
	commandRunner.AssertExpectations(t)
}

func TestExecCommandHandler_ShellJoinsArguments(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("Execute", domain.Shell("echo hi | tr a-z A-Z")).
		Return(&domain.ExecutionResult{Stdout: "HI\n"}, nil)
	sut, stdout := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"echo", "hi", "|", "tr", "a-z", "A-Z"}, ExecOptions{Shell: true})

	require.NoError(t, err)
	assert.Equal(t, "HI\n", stdout.String())
}

func TestExecCommandHandler_FeedsInput(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("ExecuteWithInput", domain.Command("wc", "-l"), "a\nb\n").
		Return(&domain.ExecutionResult{Stdout: "2\n"}, nil)
	sut, stdout := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"wc", "-l"}, ExecOptions{Input: "a\nb\n", HasInput: true})

	require.NoError(t, err)
	assert.Equal(t, "2\n", stdout.String())
}

func TestExecCommandHandler_EmptyInputStillUsesStdin(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("ExecuteWithInput", domain.Command("cat"), "").
		Return(&domain.ExecutionResult{}, nil)
	sut, _ := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"cat"}, ExecOptions{HasInput: true})

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestExecCommandHandler_TimeoutIsReportedAsError(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("ExecuteWithTimeout", domain.Command("sleep", "5"), time.Second).
		Return(&domain.TimedResult{TimedOut: true, Timeout: time.Second}, nil)
	sut, stdout := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"sleep", "5"}, ExecOptions{Timeout: time.Second})

	assert.ErrorIs(t, err, domain.ErrTimedOut)
	assert.Empty(t, stdout.String())
}

func TestExecCommandHandler_FinishedWithinTimeout(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("ExecuteWithTimeout", domain.Command("echo", "hi"), 5*time.Second).
		Return(&domain.TimedResult{Result: &domain.ExecutionResult{Stdout: "hi\n"}, Timeout: 5 * time.Second}, nil)
	sut, stdout := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"echo", "hi"}, ExecOptions{Timeout: 5 * time.Second})

	require.NoError(t, err)
	assert.Equal(t, "hi\n", stdout.String())
}

func TestExecCommandHandler_FailurePrintsPartialStdout(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("Execute", domain.Command("make")).
		Return(&domain.ExecutionResult{ExitCode: 2}, &domain.CommandFailedError{ExitCode: 2, Stdout: "building...\n"})
	sut, stdout := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"make"}, ExecOptions{})

	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, "building...\n", stdout.String())
}

func TestExecCommandHandler_Background(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	process := new(testutil.MockBackgroundProcess)
	process.On("Invocation").Return(domain.Command("alacritty"))
	process.On("Pid").Return(99)
	process.On("OutputPath").Return("")
	commandRunner.On("StartBackground", "alacritty", []string{}).Return(process, nil)
	sut, _ := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), []string{"alacritty"}, ExecOptions{Background: true})

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
	process.AssertNotCalled(t, "Wait")
}

func TestExecCommandHandler_RejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts ExecOptions
		msg  string
	}{
		{"background with input", ExecOptions{Background: true, HasInput: true}, "--input cannot be combined with --background"},
		{"background with timeout", ExecOptions{Background: true, Timeout: time.Second}, "--timeout cannot be combined with --background"},
		{"background with shell", ExecOptions{Background: true, Shell: true}, "--shell cannot be combined with --background"},
		{"input with timeout", ExecOptions{HasInput: true, Timeout: time.Second}, "--input cannot be combined with --timeout"},
		{"negative timeout", ExecOptions{Timeout: -time.Second}, "--timeout must not be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			commandRunner := new(testutil.MockCommandRunner)
			sut, _ := newExecHandler(commandRunner)

			err := sut.Handle(context.Background(), []string{"true"}, tc.opts)

			assert.EqualError(t, err, tc.msg)
			assert.Empty(t, commandRunner.Calls)
		})
	}
}

func TestExecCommandHandler_RequiresCommand(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	sut, _ := newExecHandler(commandRunner)

	err := sut.Handle(context.Background(), nil, ExecOptions{})

	assert.Error(t, err)
	commandRunner.AssertNotCalled(t, "Execute", mock.Anything)
}
