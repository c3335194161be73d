package staticcmd

import (
	"context"
	"errors"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/commands"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/generator"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the static site command handlers produced by RegisterStaticCommands.
type HandlerSet struct {
	Build *BuildSiteHandler
}

// RegisterStaticCommands builds the site build handler and registers it with
// the provided registry.
func RegisterStaticCommands(reg CommandRegistry, service generator.Service, provider interfaces.LoggerProvider, gates FeatureGates, opts ...commands.HandlerOption[BuildSiteCommand]) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("static command registration: generator service is nil")
	}

	logger := commands.CommandLogger(provider, "static")

	buildHandler := NewBuildSiteHandler(service, logger, gates, opts...)

	if reg != nil {
		if err := reg.RegisterCommand(buildHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Build: buildHandler}, nil
}

// RegisterStaticCron wires scheduled rebuilds into a cron registrar using the
// supplied command configuration and message payload.
func RegisterStaticCron(reg CronRegistrar, handler *BuildSiteHandler, cfg command.HandlerConfig, msg BuildSiteCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
