//go:build wireinject
// +build wireinject

package app

import (
	"devspace/internal/adapters/command_runner"
	"devspace/internal/adapters/filesystem"
	"devspace/internal/adapters/terminal"
	"devspace/internal/core"
	"devspace/internal/core/handler"
	"devspace/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	ProvideLogger,
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideConfig,
	core.ProvideWorkspaceSwitcher,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectStartCommandHandler() (handler.StartCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideStartCommandHandler,
	)
	return handler.StartCommandHandler{}, nil
}

func InjectWorkspaceCommandHandler() (handler.WorkspaceCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideWorkspaceCommandHandler,
	)
	return handler.WorkspaceCommandHandler{}, nil
}

func InjectExecCommandHandler() (handler.ExecCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideExecCommandHandler,
	)
	return handler.ExecCommandHandler{}, nil
}

func InjectPipeCommandHandler() (handler.PipeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePipeCommandHandler,
	)
	return handler.PipeCommandHandler{}, nil
}

// InjectInitializeCommandHandler does not load the config, so it works when
// the existing file is broken.
func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
		terminal.ProvideTerminalInput,
		wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
