package staticcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/commands"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/generator"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

const buildOperation = "static.build_site"

// ErrGeneratorFeatureDisabled is returned when the generator feature flag is disabled at runtime.
var ErrGeneratorFeatureDisabled = errors.New("static command: feature disabled")

var _ command.Commander[BuildSiteCommand] = (*BuildSiteHandler)(nil)

// FeatureGates exposes runtime feature toggles required by static build handlers.
type FeatureGates struct {
	GeneratorEnabled func() bool
}

func (g FeatureGates) generatorEnabled() bool {
	if g.GeneratorEnabled == nil {
		return true
	}
	return g.GeneratorEnabled()
}

// BuildSiteHandler orchestrates static site builds via the shared command
// handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler creates a handler bound to the supplied generator service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if !gates.generatorEnabled() {
			return ErrGeneratorFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if msg.Clean && !msg.DryRun {
			if err := service.Clean(ctx); err != nil {
				return err
			}
		}

		result, err := service.Build(ctx, generator.BuildOptions{
			Permalinks: msg.Permalinks,
			DryRun:     msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"posts_built":    result.PostsBuilt,
				"posts_skipped":  result.PostsSkipped,
				"archives_built": result.ArchivesBuilt,
				"assets_built":   result.AssetsBuilt,
				"feeds_built":    result.FeedsBuilt,
				"duration_ms":    result.Duration.Milliseconds(),
				"dry_run":        msg.DryRun,
			}).Info("static.command.build_site.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](buildOperation),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if len(msg.Permalinks) > 0 {
				fields["permalink_count"] = len(msg.Permalinks)
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.Clean {
				fields["clean"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
