package command_runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"devspace/internal/core/domain"
	"devspace/internal/ports"
)

// OsBackgroundProcess is a detached process started by StartBackground. The
// runner keeps no reference to it; whoever holds it decides whether it is
// ever waited for or killed.
type OsBackgroundProcess struct {
	cmd        *exec.Cmd
	invocation domain.Invocation
	runID      string
	outputPath string

	waitOnce sync.Once
	waitErr  error
}

func newOsBackgroundProcess(cmd *exec.Cmd, inv domain.Invocation, runID, outputPath string) *OsBackgroundProcess {
	return &OsBackgroundProcess{
		cmd:        cmd,
		invocation: inv,
		runID:      runID,
		outputPath: outputPath,
	}
}

func (p *OsBackgroundProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *OsBackgroundProcess) RunID() string {
	return p.runID
}

func (p *OsBackgroundProcess) Invocation() domain.Invocation {
	return p.invocation
}

func (p *OsBackgroundProcess) OutputPath() string {
	return p.outputPath
}

func (p *OsBackgroundProcess) Signal(sig os.Signal) error {
	return p.cmd.Process.Signal(sig)
}

func (p *OsBackgroundProcess) Kill() error {
	err := p.cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// Wait blocks until the process exits. It is safe to call more than once;
// later calls return the first result. Output is not captured, so a
// CommandFailedError from Wait carries no stderr.
func (p *OsBackgroundProcess) Wait() error {
	p.waitOnce.Do(func() {
		err := p.cmd.Wait()
		var exitErr *exec.ExitError
		switch {
		case err == nil:
		case errors.As(err, &exitErr):
			p.waitErr = &domain.CommandFailedError{
				Invocation: p.invocation,
				ExitCode:   exitErr.ExitCode(),
			}
		default:
			p.waitErr = fmt.Errorf("failed to wait for %s: %w", p.invocation, err)
		}
	})
	return p.waitErr
}

var _ ports.BackgroundProcess = (*OsBackgroundProcess)(nil)
