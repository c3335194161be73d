package postcmd

import (
	"errors"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/commands"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the post command handlers produced by RegisterPostCommands.
type HandlerSet struct {
	Publish   *PublishPostHandler
	Unpublish *UnpublishPostHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	publishHandlerOpts   []commands.HandlerOption[PublishPostCommand]
	unpublishHandlerOpts []commands.HandlerOption[UnpublishPostCommand]
}

// WithPublishHandlerOptions forwards options to the PublishPostHandler constructor.
func WithPublishHandlerOptions(opts ...commands.HandlerOption[PublishPostCommand]) Option {
	return func(cfg *options) {
		cfg.publishHandlerOpts = append(cfg.publishHandlerOpts, opts...)
	}
}

// WithUnpublishHandlerOptions forwards options to the UnpublishPostHandler constructor.
func WithUnpublishHandlerOptions(opts ...commands.HandlerOption[UnpublishPostCommand]) Option {
	return func(cfg *options) {
		cfg.unpublishHandlerOpts = append(cfg.unpublishHandlerOpts, opts...)
	}
}

// RegisterPostCommands builds the publish workflow handlers and registers them
// with the provided registry.
func RegisterPostCommands(reg CommandRegistry, posts Publisher, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if posts == nil {
		return nil, errors.New("post command registration: publisher is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "posts")

	publishHandler := NewPublishPostHandler(posts, logger, cfg.publishHandlerOpts...)
	unpublishHandler := NewUnpublishPostHandler(posts, logger, cfg.unpublishHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(publishHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(unpublishHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Publish:   publishHandler,
		Unpublish: unpublishHandler,
	}, nil
}
