package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"devspace/internal/core/domain"
	"devspace/internal/ports"
)

type PipeCommandHandler struct {
	commandRunner ports.CommandRunner
	stdout        io.Writer
}

func ProvidePipeCommandHandler(commandRunner ports.CommandRunner) PipeCommandHandler {
	return PipeCommandHandler{
		commandRunner: commandRunner,
		stdout:        os.Stdout,
	}
}

// Handle runs each stage as a shell script, connecting stdout of one stage
// to stdin of the next, and prints what the last stage wrote.
func (h *PipeCommandHandler) Handle(ctx context.Context, stages []string) error {
	if len(stages) == 0 {
		return errors.New("at least one stage is required")
	}

	invs := make([]domain.Invocation, len(stages))
	for i, stage := range stages {
		invs[i] = domain.Shell(stage)
	}

	result, err := h.commandRunner.ExecutePipeline(ctx, invs)
	if err != nil {
		return err
	}

	fmt.Fprint(h.stdout, result.Stdout)
	return nil
}
