package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"devspace/internal/cli/progress"
	"devspace/internal/core"
	"devspace/internal/core/domain"
	"devspace/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type startFixture struct {
	config        domain.Config
	commandRunner *testutil.MockCommandRunner
	process       *testutil.MockBackgroundProcess
	output        *bytes.Buffer
	calls         []string
	sleeps        []time.Duration
}

func newStartFixture() *startFixture {
	return &startFixture{
		config:        domain.CreateDefaultConfig(),
		commandRunner: new(testutil.MockCommandRunner),
		process:       new(testutil.MockBackgroundProcess),
		output:        &bytes.Buffer{},
	}
}

func (f *startFixture) record(call string) func(mock.Arguments) {
	return func(mock.Arguments) { f.calls = append(f.calls, call) }
}

func (f *startFixture) handler() StartCommandHandler {
	sut := ProvideStartCommandHandler(
		&f.config,
		f.commandRunner,
		core.NewWorkspaceSwitcher(f.commandRunner, f.config.Workspace.Dispatcher, discardLogger),
	)
	sut.newTracker = func(names ...string) *progress.Tracker {
		return progress.NewPlainTracker(f.output, names...)
	}
	sut.sleep = func(ctx context.Context, d time.Duration) error {
		f.calls = append(f.calls, "sleep")
		f.sleeps = append(f.sleeps, d)
		return ctx.Err()
	}
	return sut
}

func (f *startFixture) expectWorkspace(n string, err error) {
	var result *domain.ExecutionResult
	if err == nil {
		result = &domain.ExecutionResult{}
	}
	f.commandRunner.On("ExecuteArgs", "hyprctl", []string{"dispatch", "workspace", n}).
		Run(f.record("workspace "+n)).Return(result, err).Once()
}

func (f *startFixture) expectEditor(err error) {
	var result *domain.ExecutionResult
	if err == nil {
		result = &domain.ExecutionResult{}
	}
	f.commandRunner.On("ExecuteArgs", "code", []string{"--new-window"}).
		Run(f.record("editor")).Return(result, err).Once()
}

func (f *startFixture) expectTerminal(err error) {
	if err != nil {
		f.commandRunner.On("StartBackground", "alacritty", []string(nil)).
			Run(f.record("terminal")).Return(nil, err).Once()
		return
	}
	f.process.On("Pid").Return(4242)
	f.process.On("OutputPath").Return("")
	f.commandRunner.On("StartBackground", "alacritty", []string(nil)).
		Run(f.record("terminal")).Return(f.process, nil).Once()
}

func TestStartCommandHandler_RunsStepsInOrder(t *testing.T) {
	f := newStartFixture()
	f.expectWorkspace("1", nil)
	f.expectEditor(nil)
	f.expectWorkspace("10", nil)
	f.expectTerminal(nil)
	sut := f.handler()

	err := sut.Handle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"workspace 1", "editor", "sleep", "workspace 10", "terminal"}, f.calls)
	assert.Equal(t, []time.Duration{time.Second}, f.sleeps)
	assert.Contains(t, f.output.String(), "Start alacritty (pid 4242)")
	f.commandRunner.AssertExpectations(t)
}

func TestStartCommandHandler_UsesConfiguredApplications(t *testing.T) {
	f := newStartFixture()
	f.config.Editor = domain.Application{Command: "nvim-qt", Workspace: 2}
	f.config.Terminal = domain.Application{Command: "foot", Args: []string{"-e", "tmux"}, Workspace: 2}
	f.config.SettleDelay = 0
	f.commandRunner.On("ExecuteArgs", "hyprctl", []string{"dispatch", "workspace", "2"}).
		Return(&domain.ExecutionResult{}, nil).Once()
	f.commandRunner.On("ExecuteArgs", "nvim-qt", []string(nil)).Return(&domain.ExecutionResult{}, nil).Once()
	f.process.On("Pid").Return(7)
	f.process.On("OutputPath").Return("/tmp/logs/foot-1.log")
	f.commandRunner.On("StartBackground", "foot", []string{"-e", "tmux"}).Return(f.process, nil).Once()
	sut := f.handler()

	err := sut.Handle(context.Background())

	require.NoError(t, err)
	// Both applications share workspace 2, so only one dispatch happens.
	f.commandRunner.AssertNumberOfCalls(t, "ExecuteArgs", 2)
	assert.Equal(t, []time.Duration{0}, f.sleeps)
	assert.Contains(t, f.output.String(), "output in /tmp/logs/foot-1.log")
	f.commandRunner.AssertExpectations(t)
}

func TestStartCommandHandler_WorkspaceFailuresDoNotAbort(t *testing.T) {
	f := newStartFixture()
	notFound := &domain.LaunchFailedError{Invocation: domain.Command("hyprctl"), Err: errors.New("not found")}
	f.expectWorkspace("1", notFound)
	f.expectEditor(nil)
	f.expectWorkspace("10", notFound)
	f.expectTerminal(nil)
	sut := f.handler()

	err := sut.Handle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"workspace 1", "editor", "sleep", "workspace 10", "terminal"}, f.calls)
	assert.Contains(t, f.output.String(), "WARNING")
	f.commandRunner.AssertExpectations(t)
}

func TestStartCommandHandler_EditorFailureAborts(t *testing.T) {
	f := newStartFixture()
	f.expectWorkspace("1", nil)
	f.expectEditor(&domain.CommandFailedError{Invocation: domain.Command("code", "--new-window"), ExitCode: 1})
	sut := f.handler()

	err := sut.Handle(context.Background())

	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.ErrorContains(t, err, "failed to launch editor")
	assert.Equal(t, []string{"workspace 1", "editor"}, f.calls)
	f.commandRunner.AssertNotCalled(t, "StartBackground", mock.Anything, mock.Anything)
}

func TestStartCommandHandler_TerminalLaunchFailureIsReturned(t *testing.T) {
	f := newStartFixture()
	f.expectWorkspace("1", nil)
	f.expectEditor(nil)
	f.expectWorkspace("10", nil)
	f.expectTerminal(&domain.LaunchFailedError{Invocation: domain.Command("alacritty"), Err: errors.New("not found")})
	sut := f.handler()

	err := sut.Handle(context.Background())

	assert.ErrorIs(t, err, domain.ErrLaunchFailed)
	assert.ErrorContains(t, err, "failed to start terminal")
}

func TestStartCommandHandler_CancellationDuringSettleDelayAborts(t *testing.T) {
	f := newStartFixture()
	ctx, cancel := context.WithCancel(context.Background())
	f.expectWorkspace("1", nil)
	f.commandRunner.On("ExecuteArgs", "code", []string{"--new-window"}).
		Run(func(mock.Arguments) { cancel() }).Return(&domain.ExecutionResult{}, nil).Once()
	sut := f.handler()

	err := sut.Handle(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	f.commandRunner.AssertNotCalled(t, "StartBackground", mock.Anything, mock.Anything)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, sleepContext(ctx, time.Minute), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
