package bootstrap

import (
	"fmt"
	"strings"

	blog "github.com/code-bluecomment/code-bluecomment.github.io"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/di"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// Options captures configuration for markdown CLI bootstraps.
type Options struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	// DSN selects the database the post repository persists to. Empty keeps
	// the in-memory repository, which is enough for dry runs and previews.
	DSN            string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blog module and the configured markdown service/logger.
type Module struct {
	Module  *blog.Module
	Service interfaces.MarkdownService
	Logger  interfaces.Logger
}

// BuildModule constructs a blog module configured for markdown operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := blog.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Content.PostsDir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.PostsDir == "" {
		cfg.Content.PostsDir = "_posts"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}
	cfg.Content.Recursive = opts.Recursive

	if dsn := strings.TrimSpace(opts.DSN); dsn != "" {
		cfg.Storage.Provider = "bun"
		cfg.Storage.DSN = dsn
	} else {
		cfg.Storage.Provider = "memory"
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blog.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	service := module.Markdown()
	if service == nil {
		return nil, fmt.Errorf("markdown service not configured; ensure markdown feature is enabled")
	}

	logger := logging.MarkdownLogger(module.Container().LoggerProvider())

	return &Module{
		Module:  module,
		Service: service,
		Logger:  logger,
	}, nil
}
