package command_runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"devspace/internal/core/domain"
	"devspace/internal/ports"

	"github.com/google/uuid"
)

// pipeDrainDelay bounds how long Wait keeps reading stdout/stderr after the
// process exited or was killed, in case a grandchild still holds the pipes.
const pipeDrainDelay = 500 * time.Millisecond

// OsCommandRunner executes commands using os/exec.
type OsCommandRunner struct {
	logger           *slog.Logger
	backgroundLogDir string
}

func ProvideOsCommandRunner(logger *slog.Logger, config *domain.Config) *OsCommandRunner {
	return NewOsCommandRunner(logger, config.Background.LogDir)
}

// NewOsCommandRunner creates a runner. Background output is written below
// backgroundLogDir, or discarded when it is empty.
func NewOsCommandRunner(logger *slog.Logger, backgroundLogDir string) *OsCommandRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &OsCommandRunner{
		logger:           logger,
		backgroundLogDir: backgroundLogDir,
	}
}

func (r *OsCommandRunner) Execute(ctx context.Context, inv domain.Invocation) (*domain.ExecutionResult, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return r.run(ctx, inv, nil)
}

func (r *OsCommandRunner) ExecuteArgs(ctx context.Context, name string, args ...string) (*domain.ExecutionResult, error) {
	return r.Execute(ctx, domain.Command(name, args...))
}

func (r *OsCommandRunner) ExecuteWithInput(ctx context.Context, inv domain.Invocation, input string) (*domain.ExecutionResult, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return r.run(ctx, inv, strings.NewReader(input))
}

func (r *OsCommandRunner) ExecuteWithTimeout(ctx context.Context, inv domain.Invocation, timeout time.Duration) (*domain.TimedResult, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", domain.ErrInvalidInvocation, timeout)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := r.run(timeoutCtx, inv, nil)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		r.logger.Warn("command timed out", "command", inv.String(), "timeout", timeout)
		return &domain.TimedResult{TimedOut: true, Timeout: timeout}, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.TimedResult{Result: result, Timeout: timeout}, nil
}

func (r *OsCommandRunner) ExecutePipeline(ctx context.Context, invs []domain.Invocation) (*domain.ExecutionResult, error) {
	if len(invs) == 0 {
		return nil, fmt.Errorf("%w: empty pipeline", domain.ErrInvalidInvocation)
	}
	for i, inv := range invs {
		if err := inv.Validate(); err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
	}
	if len(invs) == 1 {
		return r.run(ctx, invs[0], nil)
	}
	return r.runPipeline(ctx, invs)
}

func (r *OsCommandRunner) StartBackground(name string, args ...string) (ports.BackgroundProcess, error) {
	inv := domain.Command(name, args...)
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	cmd := exec.Command(name, args...)
	detachProcess(cmd)

	// Stdin and, without a log dir, stdout/stderr stay nil, which connects
	// them to the null device. No pipe is left for anyone to drain.
	var outputPath string
	var logFile *os.File
	if r.backgroundLogDir != "" {
		if err := os.MkdirAll(r.backgroundLogDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create background log directory: %w", err)
		}
		outputPath = filepath.Join(r.backgroundLogDir, fmt.Sprintf("%s-%s.log", filepath.Base(name), runID))
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open background log file: %w", err)
		}
		logFile = f
		cmd.Stdout = logFile
		cmd.Stderr = logFile
	}

	err := cmd.Start()
	if logFile != nil {
		// The child has its own descriptor now.
		logFile.Close()
	}
	if err != nil {
		if outputPath != "" {
			os.Remove(outputPath)
		}
		r.logger.Error("failed to start background command", "run_id", runID, "command", inv.String(), "error", err)
		return nil, &domain.LaunchFailedError{Invocation: inv, Err: err}
	}

	r.logger.Info("started in background",
		"run_id", runID,
		"command", inv.String(),
		"pid", cmd.Process.Pid,
		"output", outputPath,
	)
	return newOsBackgroundProcess(cmd, inv, runID, outputPath), nil
}

// run starts a single process and waits for it.
func (r *OsCommandRunner) run(ctx context.Context, inv domain.Invocation, stdin io.Reader) (*domain.ExecutionResult, error) {
	cmd := buildCommand(ctx, inv)
	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runID := uuid.NewString()
	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, r.startError(ctx, inv, runID, err)
	}
	waitErr := cmd.Wait()

	result := &domain.ExecutionResult{
		RunID:    runID,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	return result, r.checkExit(ctx, inv, result, waitErr)
}

func (r *OsCommandRunner) startError(ctx context.Context, inv domain.Invocation, runID string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", inv, ctxErr)
	}
	r.logger.Error("failed to start command", "run_id", runID, "command", inv.String(), "error", err)
	return &domain.LaunchFailedError{Invocation: inv, Err: err}
}

// checkExit turns the error from Wait into the runner's error taxonomy and
// logs the captured output.
func (r *OsCommandRunner) checkExit(ctx context.Context, inv domain.Invocation, result *domain.ExecutionResult, waitErr error) error {
	attrs := []any{
		"run_id", result.RunID,
		"command", inv.String(),
		"duration", result.Duration,
	}

	if waitErr != nil && errors.Is(waitErr, exec.ErrWaitDelay) {
		// Exited cleanly, but something it spawned kept the output pipes open.
		r.logger.Debug("output pipes still open after exit", attrs...)
		waitErr = nil
	}

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.logger.Debug("command interrupted", append(attrs, "reason", ctxErr)...)
			return fmt.Errorf("%s: %w", inv, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return fmt.Errorf("failed to wait for %s: %w", inv, waitErr)
		}
		result.ExitCode = exitErr.ExitCode()
		r.logger.Warn("command failed", append(attrs, "exit_code", result.ExitCode, "stderr", result.Stderr)...)
		return &domain.CommandFailedError{
			Invocation: inv,
			ExitCode:   result.ExitCode,
			Stdout:     result.Stdout,
			Stderr:     result.Stderr,
		}
	}

	r.logger.Debug("command succeeded", append(attrs, "stdout", result.Stdout)...)
	return nil
}

// buildCommand maps an invocation onto exec.Cmd. Shell scripts go through
// the platform shell, argument vectors are passed through untouched.
func buildCommand(ctx context.Context, inv domain.Invocation) *exec.Cmd {
	var cmd *exec.Cmd
	if inv.IsShell() {
		shell, shellArg := getShellCommand()
		cmd = exec.CommandContext(ctx, shell, shellArg, inv.Script)
	} else {
		cmd = exec.CommandContext(ctx, inv.Name, inv.Args...)
	}
	setProcessGroup(cmd)
	cmd.WaitDelay = pipeDrainDelay
	return cmd
}

func getShellCommand() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/c"
	}
	return "sh", "-c"
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
