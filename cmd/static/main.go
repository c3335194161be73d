package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	blog "github.com/code-bluecomment/code-bluecomment.github.io"
	markdowncmd "github.com/code-bluecomment/code-bluecomment.github.io/internal/commands/markdown"
	staticcmd "github.com/code-bluecomment/code-bluecomment.github.io/internal/commands/static"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
)

var moduleBuilder = buildModule

func main() {
	if err := runBuild(os.Args[1:]); err != nil {
		log.Fatalf("static build: %v", err)
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("static-build", flag.ExitOnError)
	contentDir := fs.String("content-dir", "_posts", "Path to the post corpus root")
	pattern := fs.String("pattern", "*.markdown", "Glob pattern applied when discovering post files")
	outputDir := fs.String("output-dir", "_site", "Directory the rendered site is written to")
	baseURL := fs.String("base-url", "", "Absolute site URL used in feeds, the sitemap, and templates")
	title := fs.String("title", "Blue Comment", "Site title")
	description := fs.String("description", "", "Site description used in feeds")
	author := fs.String("author", "", "Site author used in feeds")
	themeDir := fs.String("theme-dir", "themes", "Directory holding layout templates")
	dsn := fs.String("dsn", "", "Database DSN for the post store (empty keeps an in-memory store)")
	skipSync := fs.Bool("skip-sync", false, "Skip syncing the corpus into the post store before building")
	clean := fs.Bool("clean", false, "Remove the output directory before building")
	incremental := fs.Bool("incremental", false, "Skip artifacts whose sources are unchanged since the last build")
	dryRun := fs.Bool("dry-run", false, "Render without writing artifacts")
	workers := fs.Int("workers", 0, "Concurrent render workers (0 selects a sensible default)")
	permalinks := fs.String("permalinks", "", "Comma separated permalink filter limiting the build scope")
	feeds := fs.Bool("feeds", true, "Generate RSS and Atom feeds")
	sitemap := fs.Bool("sitemap", true, "Generate sitemap.xml")
	robots := fs.Bool("robots", true, "Generate robots.txt")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(buildOptions{
		contentDir:  *contentDir,
		pattern:     *pattern,
		outputDir:   *outputDir,
		baseURL:     *baseURL,
		title:       *title,
		description: *description,
		author:      *author,
		themeDir:    *themeDir,
		dsn:         *dsn,
		incremental: *incremental,
		workers:     *workers,
		feeds:       *feeds,
		sitemap:     *sitemap,
		robots:      *robots,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()
	provider := module.Container().LoggerProvider()

	if !*skipSync {
		service := module.Markdown()
		if service == nil {
			return fmt.Errorf("markdown service not configured; ensure Features.Markdown is enabled")
		}
		syncHandler := markdowncmd.NewSyncPostsHandler(service, logging.MarkdownLogger(provider), markdowncmd.FeatureGates{})
		if err := syncHandler.Execute(ctx, markdowncmd.SyncPostsCommand{
			Directory:      ".",
			UpdateExisting: true,
		}); err != nil {
			return fmt.Errorf("sync corpus: %w", err)
		}
	}

	buildHandler := staticcmd.NewBuildSiteHandler(module.Generator(), logging.GeneratorLogger(provider), staticcmd.FeatureGates{})
	cmd := staticcmd.BuildSiteCommand{
		Permalinks: splitList(*permalinks),
		DryRun:     *dryRun,
		Clean:      *clean,
	}
	if err := buildHandler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute build command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "static build command executed successfully")

	return nil
}

type buildOptions struct {
	contentDir  string
	pattern     string
	outputDir   string
	baseURL     string
	title       string
	description string
	author      string
	themeDir    string
	dsn         string
	incremental bool
	workers     int
	feeds       bool
	sitemap     bool
	robots      bool
}

func buildModule(opts buildOptions) (*blog.Module, error) {
	cfg := blog.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Features.Generator = true
	cfg.Markdown.Enabled = true
	cfg.Generator.Enabled = true

	cfg.Content.PostsDir = opts.contentDir
	if trimmed := strings.TrimSpace(opts.pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}

	cfg.Site.Title = opts.title
	cfg.Site.Description = opts.description
	cfg.Site.Author = opts.author
	cfg.Site.BaseURL = opts.baseURL

	cfg.Theme.BasePath = opts.themeDir
	cfg.Generator.OutputDir = opts.outputDir
	cfg.Generator.Incremental = opts.incremental
	cfg.Generator.Workers = opts.workers
	cfg.Generator.GenerateFeeds = opts.feeds
	cfg.Generator.GenerateSitemap = opts.sitemap
	cfg.Generator.GenerateRobots = opts.robots

	if dsn := strings.TrimSpace(opts.dsn); dsn != "" {
		cfg.Storage.Provider = "bun"
		cfg.Storage.DSN = dsn
	} else {
		cfg.Storage.Provider = "memory"
	}

	return blog.New(cfg)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
