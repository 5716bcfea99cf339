package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultEditorCommand     = "code"
	DefaultTerminalCommand   = "alacritty"
	DefaultDispatcher        = "hyprctl"
	DefaultEditorWorkspace   = 1
	DefaultTerminalWorkspace = 10
	DefaultSettleDelay       = time.Second
)

// Application describes a program launched by `devspace start` and the
// workspace it should land on.
type Application struct {
	Command   string   `yaml:"command"`
	Args      []string `yaml:"args,omitempty"`
	Workspace int      `yaml:"workspace"`
}

func (a Application) Invocation() Invocation {
	return Command(a.Command, a.Args...)
}

type WorkspaceSettings struct {
	Dispatcher string `yaml:"dispatcher"`
}

type BackgroundSettings struct {
	// LogDir receives one log file per background process. Output is
	// discarded when empty.
	LogDir string `yaml:"logDir,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Editor      Application        `yaml:"editor"`
	Terminal    Application        `yaml:"terminal"`
	Workspace   WorkspaceSettings  `yaml:"workspace"`
	SettleDelay time.Duration      `yaml:"settleDelay"`
	Background  BackgroundSettings `yaml:"background,omitempty"`
}

func CreateDefaultConfig() Config {
	return Config{
		Editor: Application{
			Command:   DefaultEditorCommand,
			Args:      []string{"--new-window"},
			Workspace: DefaultEditorWorkspace,
		},
		Terminal: Application{
			Command:   DefaultTerminalCommand,
			Workspace: DefaultTerminalWorkspace,
		},
		Workspace: WorkspaceSettings{
			Dispatcher: DefaultDispatcher,
		},
		SettleDelay: DefaultSettleDelay,
	}
}

// ApplyDefaults fills in fields left empty in a partially written config file.
// SettleDelay is left alone since zero is a valid setting.
func (c *Config) ApplyDefaults() {
	defaults := CreateDefaultConfig()
	if c.Editor.Command == "" {
		c.Editor.Command = defaults.Editor.Command
		if c.Editor.Args == nil {
			c.Editor.Args = defaults.Editor.Args
		}
	}
	if c.Editor.Workspace == 0 {
		c.Editor.Workspace = defaults.Editor.Workspace
	}
	if c.Terminal.Command == "" {
		c.Terminal.Command = defaults.Terminal.Command
	}
	if c.Terminal.Workspace == 0 {
		c.Terminal.Workspace = defaults.Terminal.Workspace
	}
	if c.Workspace.Dispatcher == "" {
		c.Workspace.Dispatcher = defaults.Workspace.Dispatcher
	}
}

func (c *Config) Validate() error {
	apps := []struct {
		name string
		app  Application
	}{
		{"editor", c.Editor},
		{"terminal", c.Terminal},
	}
	for _, a := range apps {
		if strings.TrimSpace(a.app.Command) == "" {
			return fmt.Errorf("%s has empty command", a.name)
		}
		if a.app.Workspace < 1 {
			return fmt.Errorf("%s workspace must be at least 1, got %d", a.name, a.app.Workspace)
		}
	}
	if strings.TrimSpace(c.Workspace.Dispatcher) == "" {
		return fmt.Errorf("workspace dispatcher is empty")
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settleDelay must not be negative, got %s", c.SettleDelay)
	}
	return nil
}
