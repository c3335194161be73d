package postcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/commands"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

const (
	publishOperation   = "posts.publish"
	unpublishOperation = "posts.unpublish"
)

var (
	_ command.Commander[PublishPostCommand]   = (*PublishPostHandler)(nil)
	_ command.Commander[UnpublishPostCommand] = (*UnpublishPostHandler)(nil)
)

// Publisher is the slice of the post service the publish commands need.
type Publisher interface {
	Publish(ctx context.Context, permalink string) (*interfaces.PostRecord, error)
	Unpublish(ctx context.Context, permalink string) (*interfaces.PostRecord, error)
}

// PublishPostHandler executes publish transitions against the post service.
type PublishPostHandler struct {
	inner *commands.Handler[PublishPostCommand]
}

// NewPublishPostHandler creates a handler bound to the supplied post service.
func NewPublishPostHandler(posts Publisher, logger interfaces.Logger, opts ...commands.HandlerOption[PublishPostCommand]) *PublishPostHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg PublishPostCommand) error {
		record, err := posts.Publish(ctx, msg.Permalink)
		if err != nil {
			return err
		}
		baseLogger.Info("posts.command.publish.completed", "permalink", record.Permalink, "title", record.Title)
		return nil
	}

	handlerOpts := []commands.HandlerOption[PublishPostCommand]{
		commands.WithLogger[PublishPostCommand](baseLogger),
		commands.WithOperation[PublishPostCommand](publishOperation),
		commands.WithMessageFields(func(msg PublishPostCommand) map[string]any {
			return map[string]any{"permalink": msg.Permalink}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PublishPostCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishPostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[PublishPostCommand].
func (h *PublishPostHandler) Execute(ctx context.Context, msg PublishPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UnpublishPostHandler executes unpublish transitions against the post service.
type UnpublishPostHandler struct {
	inner *commands.Handler[UnpublishPostCommand]
}

// NewUnpublishPostHandler creates a handler bound to the supplied post service.
func NewUnpublishPostHandler(posts Publisher, logger interfaces.Logger, opts ...commands.HandlerOption[UnpublishPostCommand]) *UnpublishPostHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg UnpublishPostCommand) error {
		record, err := posts.Unpublish(ctx, msg.Permalink)
		if err != nil {
			return err
		}
		baseLogger.Info("posts.command.unpublish.completed", "permalink", record.Permalink, "title", record.Title)
		return nil
	}

	handlerOpts := []commands.HandlerOption[UnpublishPostCommand]{
		commands.WithLogger[UnpublishPostCommand](baseLogger),
		commands.WithOperation[UnpublishPostCommand](unpublishOperation),
		commands.WithMessageFields(func(msg UnpublishPostCommand) map[string]any {
			return map[string]any{"permalink": msg.Permalink}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[UnpublishPostCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UnpublishPostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[UnpublishPostCommand].
func (h *UnpublishPostHandler) Execute(ctx context.Context, msg UnpublishPostCommand) error {
	return h.inner.Execute(ctx, msg)
}
