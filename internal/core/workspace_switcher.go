package core

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"devspace/internal/core/domain"
	"devspace/internal/ports"
)

// WorkspaceSwitcher moves the window manager to a numbered workspace through
// its dispatcher (`hyprctl dispatch workspace N`). Switching is best-effort:
// failures are logged and reported in the outcome, never returned as errors.
type WorkspaceSwitcher struct {
	commandRunner ports.CommandRunner
	dispatcher    string
	logger        *slog.Logger

	mu      sync.Mutex
	current int // 0 until the first successful switch
}

func ProvideWorkspaceSwitcher(
	commandRunner ports.CommandRunner,
	config *domain.Config,
	logger *slog.Logger,
) *WorkspaceSwitcher {
	return NewWorkspaceSwitcher(commandRunner, config.Workspace.Dispatcher, logger)
}

func NewWorkspaceSwitcher(commandRunner ports.CommandRunner, dispatcher string, logger *slog.Logger) *WorkspaceSwitcher {
	if dispatcher == "" {
		dispatcher = domain.DefaultDispatcher
	}
	return &WorkspaceSwitcher{
		commandRunner: commandRunner,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// Switch activates workspace n unless it is the one this switcher last set.
func (s *WorkspaceSwitcher) Switch(ctx context.Context, n int) domain.WorkspaceOutcome {
	if n < 1 {
		err := fmt.Errorf("%w: %d", domain.ErrInvalidWorkspace, n)
		s.logger.Warn("workspace switch skipped", "workspace", n, "error", err)
		return domain.WorkspaceOutcome{Workspace: n, Status: domain.WorkspaceFailed, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == n {
		s.logger.Debug("already on workspace", "workspace", n)
		return domain.WorkspaceOutcome{Workspace: n, Status: domain.WorkspaceUnchanged}
	}

	_, err := s.commandRunner.ExecuteArgs(ctx, s.dispatcher, "dispatch", "workspace", strconv.Itoa(n))
	if err != nil {
		s.logger.Warn("failed to switch workspace", "workspace", n, "dispatcher", s.dispatcher, "error", err)
		return domain.WorkspaceOutcome{Workspace: n, Status: domain.WorkspaceFailed, Err: err}
	}

	s.current = n
	s.logger.Debug("switched workspace", "workspace", n)
	return domain.WorkspaceOutcome{Workspace: n, Status: domain.WorkspaceSwitched}
}

// Current returns the workspace this switcher last set, or 0 if none.
func (s *WorkspaceSwitcher) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
