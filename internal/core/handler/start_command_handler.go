package handler

import (
	"context"
	"fmt"
	"time"

	"devspace/internal/cli/output"
	"devspace/internal/cli/progress"
	"devspace/internal/core"
	"devspace/internal/core/domain"
	"devspace/internal/ports"
)

type StartCommandHandler struct {
	config            *domain.Config
	commandRunner     ports.CommandRunner
	workspaceSwitcher *core.WorkspaceSwitcher
	newTracker        func(names ...string) *progress.Tracker
	sleep             func(ctx context.Context, d time.Duration) error
}

func ProvideStartCommandHandler(
	config *domain.Config,
	commandRunner ports.CommandRunner,
	workspaceSwitcher *core.WorkspaceSwitcher,
) StartCommandHandler {
	return StartCommandHandler{
		config:            config,
		commandRunner:     commandRunner,
		workspaceSwitcher: workspaceSwitcher,
		newTracker:        progress.NewTracker,
		sleep:             sleepContext,
	}
}

// Handle lays out the desktop: the editor opens on its workspace and is
// waited for, then the terminal is started in the background on its own
// workspace. Workspace switches are best-effort.
func (h *StartCommandHandler) Handle(ctx context.Context) error {
	editor := h.config.Editor
	terminal := h.config.Terminal

	tracker := h.newTracker(
		fmt.Sprintf("Switch to workspace %d", editor.Workspace),
		fmt.Sprintf("Launch %s", editor.Invocation()),
		fmt.Sprintf("Wait %s", progress.FormatDuration(h.config.SettleDelay)),
		fmt.Sprintf("Switch to workspace %d", terminal.Workspace),
		fmt.Sprintf("Start %s", terminal.Invocation()),
	)
	tracker.Start()
	defer tracker.Stop()

	h.switchWorkspace(ctx, tracker, 0, editor.Workspace)

	tracker.Begin(1)
	if _, err := h.commandRunner.ExecuteArgs(ctx, editor.Command, editor.Args...); err != nil {
		tracker.Complete(1, err)
		return fmt.Errorf("failed to launch editor: %w", err)
	}
	tracker.Complete(1, nil)

	tracker.Begin(2)
	if err := h.sleep(ctx, h.config.SettleDelay); err != nil {
		tracker.Complete(2, err)
		return err
	}
	tracker.Complete(2, nil)

	h.switchWorkspace(ctx, tracker, 3, terminal.Workspace)

	tracker.Begin(4)
	process, err := h.commandRunner.StartBackground(terminal.Command, terminal.Args...)
	if err != nil {
		tracker.Complete(4, err)
		return fmt.Errorf("failed to start terminal: %w", err)
	}
	detail := fmt.Sprintf("pid %d", process.Pid())
	if path := process.OutputPath(); path != "" {
		detail += ", output in " + path
	}
	tracker.CompleteWithDetail(4, detail)

	tracker.Stop()
	output.PrintSuccess(fmt.Sprintf("Workspace ready: %s", tracker.Summary()))
	return nil
}

func (h *StartCommandHandler) switchWorkspace(ctx context.Context, tracker *progress.Tracker, step, n int) {
	tracker.Begin(step)
	outcome := h.workspaceSwitcher.Switch(ctx, n)
	if !outcome.Ok() {
		tracker.Warn(step, outcome.Err)
		return
	}
	tracker.Complete(step, nil)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
