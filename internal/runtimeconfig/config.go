// Package runtimeconfig holds the plain-struct configuration consumed by the
// blog module. Fields intentionally use simple types so host applications can
// populate them from flags, environment, or their own config files.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrContentDirRequired         = errors.New("blog config: content directory is required when markdown is enabled")
	ErrMarkdownFeatureRequired    = errors.New("blog config: markdown feature must be enabled to configure markdown")
	ErrGeneratorOutputDirRequired = errors.New("blog config: generator output directory is required when generator is enabled")
	ErrGeneratorBaseURLRequired   = errors.New("blog config: generator base url is required when feeds or sitemap are enabled")
	ErrStorageProviderUnknown     = errors.New("blog config: storage provider is invalid")
	ErrLoggingProviderRequired    = errors.New("blog config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown     = errors.New("blog config: logging provider is invalid")
	ErrLoggingLevelInvalid        = errors.New("blog config: logging level is invalid")
	ErrLoggingFormatInvalid       = errors.New("blog config: logging format is invalid")
	ErrWorkersInvalid             = errors.New("blog config: generator workers must be zero or positive")
)

// Config aggregates feature flags and adapter bindings for the blog module.
type Config struct {
	Enabled   bool
	Site      SiteConfig
	Content   ContentConfig
	Markdown  MarkdownConfig
	Lint      LintConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Routes    RoutesConfig
	Theme     ThemeConfig
	Generator GeneratorConfig
	Logging   LoggingConfig
	Commands  CommandsConfig
	Features  Features
}

// SiteConfig describes the published site. The values flow into templates,
// feeds, and the sitemap.
type SiteConfig struct {
	Title       string
	Description string
	Author      string
	BaseURL     string
	// DisqusShortname enables the comment embed on posts that allow comments.
	DisqusShortname string
}

// ContentConfig captures where the post corpus lives on disk.
type ContentConfig struct {
	// PostsDir is the directory holding YYYY-MM-DD-slug.markdown files.
	PostsDir  string
	Pattern   string
	Recursive bool
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Enabled    bool
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LintConfig controls corpus checks.
type LintConfig struct {
	KnownLayouts        []string
	DateMismatchIsError bool
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	// DSN is the database connection string for the bun provider, e.g.
	// file:blog.db?cache=shared for sqlite.
	DSN string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// RoutesConfig captures go-urlkit routing used when rendering archive and
// post URLs.
type RoutesConfig struct {
	RouteConfig *urlkit.Config
	// DefaultGroup names the urlkit group used for site routes.
	DefaultGroup string
}

// ThemeConfig captures where templates live and which theme renders the site.
type ThemeConfig struct {
	BasePath     string
	DefaultTheme string
}

// GeneratorConfig captures behaviour for the static site generator.
type GeneratorConfig struct {
	Enabled          bool
	OutputDir        string
	CleanBuild       bool
	Incremental      bool
	CopyAssets       bool
	GenerateSitemap  bool
	GenerateRobots   bool
	GenerateFeeds    bool
	PostsPerFeed     int
	Workers          int
	RenderTimeout    time.Duration
	AssetCopyTimeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
}

// Features toggles module functionality.
type Features struct {
	Markdown  bool
	Generator bool
	Lint      bool
	Activity  bool
	Logger    bool
}

// DefaultConfig returns opinionated defaults matching the corpus layout.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Site: SiteConfig{
			Title: "Blue Comment",
		},
		Content: ContentConfig{
			PostsDir:  "_posts",
			Pattern:   "*.markdown",
			Recursive: false,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify"},
		},
		Lint: LintConfig{
			KnownLayouts: []string{"post", "page"},
		},
		Storage: StorageConfig{
			Provider: "bun",
			DSN:      "file:blog.db?cache=shared&_pragma=foreign_keys(1)",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Theme: ThemeConfig{
			BasePath: "themes",
		},
		Generator: GeneratorConfig{
			OutputDir:       "_site",
			CleanBuild:      true,
			CopyAssets:      true,
			GenerateSitemap: true,
			GenerateRobots:  true,
			GenerateFeeds:   true,
			PostsPerFeed:    20,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Commands: CommandsConfig{},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Content.PostsDir) == "" {
			return ErrContentDirRequired
		}
	}
	if provider := normalizeToken(cfg.Storage.Provider); provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Generator.Enabled {
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrGeneratorOutputDirRequired
		}
		if (cfg.Generator.GenerateFeeds || cfg.Generator.GenerateSitemap) && strings.TrimSpace(cfg.Site.BaseURL) == "" {
			return ErrGeneratorBaseURLRequired
		}
		if cfg.Generator.Workers < 0 {
			return ErrWorkersInvalid
		}
	}
	if cfg.Features.Logger {
		provider := normalizeToken(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLoggingProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case "bun", "memory", "filesystem":
		return true
	default:
		return false
	}
}

func isSupportedLoggingProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
