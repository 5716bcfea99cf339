package handler

import (
	"context"
	"fmt"

	"devspace/internal/cli/output"
	"devspace/internal/core"
	"devspace/internal/core/domain"
)

type WorkspaceCommandHandler struct {
	workspaceSwitcher *core.WorkspaceSwitcher
}

func ProvideWorkspaceCommandHandler(workspaceSwitcher *core.WorkspaceSwitcher) WorkspaceCommandHandler {
	return WorkspaceCommandHandler{
		workspaceSwitcher: workspaceSwitcher,
	}
}

// Handle switches to workspace n. A failed switch is reported as a warning
// and the returned outcome carries the cause.
func (h *WorkspaceCommandHandler) Handle(ctx context.Context, n int) domain.WorkspaceOutcome {
	outcome := h.workspaceSwitcher.Switch(ctx, n)
	switch outcome.Status {
	case domain.WorkspaceSwitched:
		output.PrintSuccess(fmt.Sprintf("Switched to workspace %d", n))
	case domain.WorkspaceUnchanged:
		output.PrintInfo(fmt.Sprintf("Already on workspace %d", n))
	default:
		output.PrintWarning(fmt.Sprintf("Could not switch to workspace %d: %v", n, outcome.Err))
	}
	return outcome
}
