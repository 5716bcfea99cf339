package handler

import (
	"errors"
	"fmt"
	"strings"

	"devspace/internal/cli/output"
	"devspace/internal/core"
	"devspace/internal/core/domain"
	"devspace/internal/ports"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
	terminalInput    ports.TerminalInput
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
	terminalInput ports.TerminalInput,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
		terminalInput:    terminalInput,
	}
}

// Handle writes the default configuration. An existing file is only replaced
// with force or after confirmation on an interactive terminal.
func (h *InitializeCommandHandler) Handle(force bool) error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}

	if configExists && !force {
		if !h.terminalInput.IsTerminal() {
			return errors.New("~/.devspace.yaml already exists. Use --force to overwrite it")
		}
		response, err := h.terminalInput.ReadLine("~/.devspace.yaml already exists. Overwrite? [y/N] ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			output.PrintInfo("Initialization cancelled")
			return nil
		}
	}

	config := domain.CreateDefaultConfig()
	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}

	output.PrintSuccess("Wrote ~/.devspace.yaml")
	return nil
}
