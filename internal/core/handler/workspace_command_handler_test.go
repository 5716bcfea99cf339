package handler

import (
	"context"
	"testing"

	"devspace/internal/core"
	"devspace/internal/core/domain"
	"devspace/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkspaceCommandHandler_Switches(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("ExecuteArgs", "hyprctl", []string{"dispatch", "workspace", "3"}).
		Return(&domain.ExecutionResult{}, nil)
	sut := ProvideWorkspaceCommandHandler(core.NewWorkspaceSwitcher(commandRunner, "hyprctl", discardLogger))

	outcome := sut.Handle(context.Background(), 3)

	assert.Equal(t, domain.WorkspaceSwitched, outcome.Status)
	commandRunner.AssertExpectations(t)
}

func TestWorkspaceCommandHandler_FailureIsAnOutcome(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("ExecuteArgs", "hyprctl", []string{"dispatch", "workspace", "3"}).
		Return(nil, &domain.CommandFailedError{ExitCode: 1, Stderr: "couldn't connect to socket"})
	sut := ProvideWorkspaceCommandHandler(core.NewWorkspaceSwitcher(commandRunner, "hyprctl", discardLogger))

	outcome := sut.Handle(context.Background(), 3)

	assert.False(t, outcome.Ok())
	assert.ErrorIs(t, outcome.Err, domain.ErrCommandFailed)
}

func TestWorkspaceCommandHandler_InvalidNumber(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	sut := ProvideWorkspaceCommandHandler(core.NewWorkspaceSwitcher(commandRunner, "hyprctl", discardLogger))

	outcome := sut.Handle(context.Background(), 0)

	assert.ErrorIs(t, outcome.Err, domain.ErrInvalidWorkspace)
	commandRunner.AssertNotCalled(t, "ExecuteArgs", mock.Anything, mock.Anything)
}
