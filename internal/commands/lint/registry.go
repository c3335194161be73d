package lintcmd

import (
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/commands"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the lint command handlers produced by RegisterLintCommands.
type HandlerSet struct {
	Lint *LintCorpusHandler
}

// RegisterLintCommands builds the lint handler and registers it with the
// provided registry. The handler configuration's logger defaults to the
// command logger namespace when unset.
func RegisterLintCommands(reg CommandRegistry, cfg HandlerConfig, provider interfaces.LoggerProvider, opts ...commands.HandlerOption[LintCorpusCommand]) (*HandlerSet, error) {
	if cfg.Logger == nil {
		cfg.Logger = commands.CommandLogger(provider, "lint")
	}

	handler := NewLintCorpusHandler(cfg, opts...)

	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Lint: handler}, nil
}
