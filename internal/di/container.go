package di

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/adapters/noop"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/adapters/storage"
	templateadapter "github.com/code-bluecomment/code-bluecomment.github.io/internal/adapters/template"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/generator"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/lint"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging/console"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging/gologger"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/markdown"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/post"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/runtimeconfig"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/activity"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/activity/usersink"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Container wires module dependencies from configuration, applying no-op
// defaults so partial setups stay usable.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	storage        interfaces.StorageProvider
	renderer       interfaces.TemplateRenderer
	assets         generator.AssetResolver
	activitySink   interfaces.ActivitySink

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	postRepo     post.PostRepository
	routeManager *urlkit.RouteManager
	clock        func() time.Time

	postSvc      post.Service
	markdownSvc  interfaces.MarkdownService
	generatorSvc generator.Service
	linter       *lint.Linter
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds the post repository to a bun database instead of the
// connection the container would open from config.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithStorageProvider overrides the artifact storage provider.
func WithStorageProvider(sp interfaces.StorageProvider) Option {
	return func(c *Container) {
		c.storage = sp
	}
}

// WithLoggerProvider overrides the logger provider derived from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithPostRepository overrides the default post repository binding.
func WithPostRepository(repo post.PostRepository) Option {
	return func(c *Container) {
		c.postRepo = repo
	}
}

// WithRenderer overrides the layout renderer.
func WithRenderer(renderer interfaces.TemplateRenderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// WithAssetResolver overrides the theme asset resolver.
func WithAssetResolver(resolver generator.AssetResolver) Option {
	return func(c *Container) {
		c.assets = resolver
	}
}

// WithActivitySink routes post lifecycle events into the provided sink.
func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(c *Container) {
		c.activitySink = sink
	}
}

// WithClock overrides the clock used by services.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPostService overrides the default post service binding.
func WithPostService(svc post.Service) Option {
	return func(c *Container) {
		c.postSvc = svc
	}
}

// WithMarkdownService overrides the default markdown service binding.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return func(c *Container) {
		c.markdownSvc = svc
	}
}

// WithGeneratorService overrides the default generator binding.
func WithGeneratorService(svc generator.Service) Option {
	return func(c *Container) {
		c.generatorSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
		clock:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()
	if err := c.configureDatabase(); err != nil {
		return nil, err
	}
	c.configureRepositories()
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	if err := c.configureRenderer(); err != nil {
		return nil, err
	}
	c.configureNavigation()
	if err := c.configureServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err == nil {
			c.loggerProvider = provider
		}
	default:
		c.loggerProvider = console.NewProvider(console.Options{})
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cacheCfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureDatabase() error {
	if c.bunDB != nil || c.postRepo != nil {
		return nil
	}
	if !strings.EqualFold(strings.TrimSpace(c.Config.Storage.Provider), "bun") {
		return nil
	}

	dsn := strings.TrimSpace(c.Config.Storage.DSN)
	if dsn == "" {
		return nil
	}

	db, err := OpenDatabase(dsn)
	if err != nil {
		return fmt.Errorf("open blog database: %w", err)
	}
	c.bunDB = db
	return nil
}

// OpenDatabase opens a bun database for the given DSN. Postgres URLs use the
// pq driver, everything else is treated as a sqlite source.
func OpenDatabase(dsn string) (*bun.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, err
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	}

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

func (c *Container) configureRepositories() {
	if c.postRepo != nil {
		return
	}
	if c.bunDB != nil {
		c.postRepo = post.NewBunPostRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		return
	}
	c.postRepo = post.NewMemoryPostRepository()
}

func (c *Container) configureStorage() error {
	if c.storage != nil {
		return nil
	}

	// The bun and memory providers only back the post repository; generated
	// artifacts always land on the filesystem when the generator is enabled.
	provider := strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider))
	if provider == "filesystem" || c.Config.Generator.Enabled {
		fsProvider, err := storage.NewFilesystemProvider(".")
		if err != nil {
			return err
		}
		c.storage = fsProvider
		return nil
	}

	c.storage = storage.NewNoOpProvider()
	return nil
}

func (c *Container) configureRenderer() error {
	if c.renderer != nil {
		return nil
	}

	basePath := strings.TrimSpace(c.Config.Theme.BasePath)
	if c.Config.Generator.Enabled && basePath != "" {
		renderer, err := templateadapter.NewRenderer(basePath)
		if err != nil {
			return fmt.Errorf("configure layout renderer: %w", err)
		}
		c.renderer = renderer
		return nil
	}

	c.renderer = noop.Template()
	return nil
}

func (c *Container) configureNavigation() {
	if c.routeManager != nil {
		return
	}
	if c.Config.Routes.RouteConfig == nil {
		return
	}
	c.routeManager = urlkit.NewRouteManager(c.Config.Routes.RouteConfig)
}

func (c *Container) configureServices() error {
	if c.postSvc == nil {
		postOpts := []post.ServiceOption{
			post.WithLogger(logging.PostsLogger(c.loggerProvider)),
			post.WithClock(c.clock),
		}
		if c.Config.Features.Activity && c.activitySink != nil {
			postOpts = append(postOpts, post.WithActivityNotifier(usersink.Hook{Sink: c.activitySink}))
		}
		svc, err := post.NewService(c.postRepo, postOpts...)
		if err != nil {
			return err
		}
		c.postSvc = svc
	}

	if c.markdownSvc == nil && c.Config.Features.Markdown && c.Config.Markdown.Enabled {
		svc, err := markdown.NewService(markdown.Config{
			BasePath:  c.Config.Content.PostsDir,
			Pattern:   c.Config.Content.Pattern,
			Recursive: c.Config.Content.Recursive,
			Parser: interfaces.ParseOptions{
				Extensions: c.Config.Markdown.Extensions,
				Sanitize:   c.Config.Markdown.Sanitize,
				HardWraps:  c.Config.Markdown.HardWraps,
				SafeMode:   c.Config.Markdown.SafeMode,
			},
			Posts:  c.postSvc,
			Logger: logging.MarkdownLogger(c.loggerProvider),
		}, nil)
		if err != nil {
			return fmt.Errorf("configure markdown service: %w", err)
		}
		c.markdownSvc = svc
	}

	if c.linter == nil {
		c.linter = lint.New(lint.Config{
			Pattern:             c.Config.Content.Pattern,
			Recursive:           c.Config.Content.Recursive,
			KnownLayouts:        c.Config.Lint.KnownLayouts,
			DateMismatchIsError: c.Config.Lint.DateMismatchIsError,
			Logger:              logging.LintLogger(c.loggerProvider),
		})
	}

	if c.generatorSvc == nil {
		if !c.Config.Features.Generator || !c.Config.Generator.Enabled {
			c.generatorSvc = generator.NewDisabledService()
			return nil
		}
		c.generatorSvc = generator.NewService(c.generatorConfig(), generator.Dependencies{
			Posts:    c.postSvc,
			Renderer: c.renderer,
			Storage:  c.storage,
			Assets:   c.assets,
			Logger:   logging.GeneratorLogger(c.loggerProvider),
		})
	}
	return nil
}

func (c *Container) generatorConfig() generator.Config {
	cfg := c.Config
	return generator.Config{
		OutputDir:       cfg.Generator.OutputDir,
		CleanBuild:      cfg.Generator.CleanBuild,
		Incremental:     cfg.Generator.Incremental,
		CopyAssets:      cfg.Generator.CopyAssets,
		GenerateSitemap: cfg.Generator.GenerateSitemap,
		GenerateRobots:  cfg.Generator.GenerateRobots,
		GenerateFeeds:   cfg.Generator.GenerateFeeds,
		PostsPerFeed:    cfg.Generator.PostsPerFeed,
		Workers:         cfg.Generator.Workers,
		Site: generator.SiteMetadata{
			BaseURL:         cfg.Site.BaseURL,
			Title:           cfg.Site.Title,
			Description:     cfg.Site.Description,
			Author:          cfg.Site.Author,
			DisqusShortname: cfg.Site.DisqusShortname,
		},
		Theming: generator.ThemingConfig{
			BasePath:     themeManifestDir(cfg.Theme.BasePath),
			DefaultTheme: cfg.Theme.DefaultTheme,
		},
		Routes: generator.RouteConfig{
			Manager: c.routeManager,
			Group:   cfg.Routes.DefaultGroup,
		},
	}
}

// themeManifestDir returns basePath when it carries a theme.json manifest.
// Theme directories without a manifest fall back to the plain layout file
// convention, so no base path is handed to the generator.
func themeManifestDir(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return ""
	}
	if _, err := os.Stat(filepath.Join(basePath, "theme.json")); err != nil {
		return ""
	}
	return basePath
}

// LoggerProvider exposes the configured logger provider; nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// StorageProvider exposes the configured artifact storage implementation.
func (c *Container) StorageProvider() interfaces.StorageProvider {
	return c.storage
}

// TemplateRenderer exposes the configured layout renderer.
func (c *Container) TemplateRenderer() interfaces.TemplateRenderer {
	return c.renderer
}

// DB exposes the bun database when the bun provider is configured.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// RouteManager exposes the urlkit route manager when routes are configured.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// PostRepository exposes the configured post repository.
func (c *Container) PostRepository() post.PostRepository {
	return c.postRepo
}

// PostService returns the configured post service.
func (c *Container) PostService() post.Service {
	return c.postSvc
}

// MarkdownService returns the markdown service; nil when the feature is off.
func (c *Container) MarkdownService() interfaces.MarkdownService {
	return c.markdownSvc
}

// GeneratorService returns the configured generator service.
func (c *Container) GeneratorService() generator.Service {
	return c.generatorSvc
}

// Linter returns the corpus linter built from config.
func (c *Container) Linter() *lint.Linter {
	return c.linter
}

// ActivityNotifier returns the notifier post services emit events through.
func (c *Container) ActivityNotifier() activity.Notifier {
	if c.Config.Features.Activity && c.activitySink != nil {
		return usersink.Hook{Sink: c.activitySink}
	}
	return activity.NoOp()
}
