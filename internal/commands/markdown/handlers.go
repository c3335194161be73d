package markdowncmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/commands"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

const (
	importOperation = "markdown.import_posts"
	syncOperation   = "markdown.sync_posts"
)

// ErrMarkdownFeatureDisabled is returned when the markdown feature flag is disabled at runtime.
var ErrMarkdownFeatureDisabled = errors.New("markdown command: feature disabled")

var (
	_ command.Commander[ImportPostsCommand] = (*ImportPostsHandler)(nil)
	_ command.Commander[SyncPostsCommand]   = (*SyncPostsHandler)(nil)
)

// ImportPostsHandler orchestrates post imports via the shared command handler foundation.
type ImportPostsHandler struct {
	inner *commands.Handler[ImportPostsCommand]
}

// NewImportPostsHandler creates a handler bound to the supplied markdown service.
func NewImportPostsHandler(service interfaces.MarkdownService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ImportPostsCommand]) *ImportPostsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ImportPostsCommand) error {
		if !gates.markdownEnabled() {
			return ErrMarkdownFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.ImportDirectory(ctx, msg.Directory, interfaces.ImportOptions{
			AuthorID:      msg.AuthorID,
			DefaultLayout: msg.DefaultLayout,
			DryRun:        msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count": len(result.CreatedPermalinks),
				"updated_count": len(result.UpdatedPermalinks),
				"skipped_count": len(result.SkippedPermalinks),
				"error_count":   len(result.Errors),
				"dry_run":       msg.DryRun,
			}).Info("markdown.command.import_posts.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportPostsCommand]{
		commands.WithLogger[ImportPostsCommand](baseLogger),
		commands.WithOperation[ImportPostsCommand](importOperation),
		commands.WithMessageFields(func(msg ImportPostsCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.AuthorID != "" {
				fields["author_id"] = msg.AuthorID
			}
			if msg.DefaultLayout != "" {
				fields["default_layout"] = msg.DefaultLayout
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportPostsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportPostsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportPostsCommand].
func (h *ImportPostsHandler) Execute(ctx context.Context, msg ImportPostsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SyncPostsHandler orchestrates post sync workflows via the shared command handler foundation.
type SyncPostsHandler struct {
	inner *commands.Handler[SyncPostsCommand]
}

// NewSyncPostsHandler creates a handler bound to the supplied markdown service.
func NewSyncPostsHandler(service interfaces.MarkdownService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncPostsCommand]) *SyncPostsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg SyncPostsCommand) error {
		if !gates.markdownEnabled() {
			return ErrMarkdownFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.Sync(ctx, msg.Directory, interfaces.SyncOptions{
			ImportOptions: interfaces.ImportOptions{
				AuthorID:      msg.AuthorID,
				DefaultLayout: msg.DefaultLayout,
				DryRun:        msg.DryRun,
			},
			DeleteOrphaned: msg.DeleteOrphaned,
			UpdateExisting: msg.UpdateExisting,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count":   result.Created,
				"updated_count":   result.Updated,
				"deleted_count":   result.Deleted,
				"skipped_count":   result.Skipped,
				"error_count":     len(result.Errors),
				"dry_run":         msg.DryRun,
				"delete_orphans":  msg.DeleteOrphaned,
				"update_existing": msg.UpdateExisting,
			}).Info("markdown.command.sync_posts.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncPostsCommand]{
		commands.WithLogger[SyncPostsCommand](baseLogger),
		commands.WithOperation[SyncPostsCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncPostsCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.AuthorID != "" {
				fields["author_id"] = msg.AuthorID
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.DeleteOrphaned {
				fields["delete_orphaned"] = true
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncPostsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncPostsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncPostsCommand].
func (h *SyncPostsHandler) Execute(ctx context.Context, msg SyncPostsCommand) error {
	return h.inner.Execute(ctx, msg)
}
