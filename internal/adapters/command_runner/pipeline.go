package command_runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"devspace/internal/core/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// runPipeline wires len(invs) >= 2 stages together with OS pipes and waits
// for the last one. Earlier stages are reaped in the background and their
// exit statuses are only logged: a failing stage that is not last does not
// fail the pipeline, the same way a shell without pipefail behaves.
func (r *OsCommandRunner) runPipeline(ctx context.Context, invs []domain.Invocation) (*domain.ExecutionResult, error) {
	n := len(invs)

	cmds := make([]*exec.Cmd, n)
	for i, inv := range invs {
		cmds[i] = buildCommand(ctx, inv)
	}

	// Parent copies of the pipe ends are closed once every stage is started,
	// otherwise the readers would never see EOF.
	var pipeEnds []*os.File
	closePipes := func() {
		for _, f := range pipeEnds {
			f.Close()
		}
		pipeEnds = nil
	}

	stageStderr := make([]bytes.Buffer, n-1)
	for i := 0; i < n-1; i++ {
		pr, pw, err := os.Pipe()
		if err != nil {
			closePipes()
			return nil, fmt.Errorf("failed to create pipe for stage %d: %w", i, err)
		}
		pipeEnds = append(pipeEnds, pr, pw)
		cmds[i].Stdout = pw
		cmds[i].Stderr = &stageStderr[i]
		cmds[i+1].Stdin = pr
	}

	var stdout, stderr bytes.Buffer
	last := cmds[n-1]
	last.Stdout = &stdout
	last.Stderr = &stderr

	runID := uuid.NewString()
	start := time.Now()
	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			closePipes()
			abortStages(cmds[:i])
			return nil, r.startError(ctx, invs[i], runID, err)
		}
	}
	closePipes()

	var reap errgroup.Group
	for i, cmd := range cmds[:n-1] {
		reap.Go(func() error {
			if err := cmd.Wait(); err != nil {
				r.logger.Debug("pipeline stage exited with error",
					"run_id", runID,
					"stage", i,
					"command", invs[i].String(),
					"error", err,
					"stderr", stageStderr[i].String(),
				)
			}
			return nil
		})
	}
	go func() {
		_ = reap.Wait()
		r.logger.Debug("pipeline stages reaped", "run_id", runID)
	}()

	waitErr := last.Wait()
	result := &domain.ExecutionResult{
		RunID:    runID,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	return result, r.checkExit(ctx, invs[n-1], result, waitErr)
}

// abortStages kills and reaps stages that were started before a later stage
// failed to launch.
func abortStages(started []*exec.Cmd) {
	for _, cmd := range started {
		killProcessGroup(cmd)
	}
	for _, cmd := range started {
		cmd.Wait()
	}
}
