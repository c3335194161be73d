package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

var (
	// ErrServiceDisabled indicates the static build feature is disabled.
	ErrServiceDisabled           = errors.New("generator: service disabled")
	errRendererRequired          = errors.New("generator: template renderer is required")
	errPostServiceRequired       = errors.New("generator: post service is required")
	errTemplateIdentifierMissing = errors.New("generator: template identifier is required for rendering")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	OutputDir       string
	CleanBuild      bool
	Incremental     bool
	CopyAssets      bool
	GenerateSitemap bool
	GenerateRobots  bool
	GenerateFeeds   bool
	PostsPerFeed    int
	Workers         int
	Site            SiteMetadata
	Theming         ThemingConfig
	Routes          RouteConfig
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	// Permalinks restricts the build to the listed posts when non-empty.
	Permalinks []string
	DryRun     bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	PostsBuilt    int
	PostsSkipped  int
	ArchivesBuilt int
	AssetsBuilt   int
	AssetsSkipped int
	FeedsBuilt    int
	Duration      time.Duration
	Rendered      []RenderedArtifact
	Diagnostics   []RenderDiagnostic
	Errors        []error
	DryRun        bool
}

// Dependencies lists the services required by the generator.
type Dependencies struct {
	Posts    interfaces.PostService
	Renderer interfaces.TemplateRenderer
	Storage  interfaces.StorageProvider
	Assets   AssetResolver
	Logger   interfaces.Logger
}

// NewService wires a generator implementation with the provided configuration
// and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &service{
		cfg:      cfg,
		deps:     deps,
		selector: newThemeSelector(cfg.Theming, nil),
		routes:   newRouteBuilder(cfg.Routes, cfg.Site.BaseURL),
		logger:   logger,
		now:      time.Now,
	}
}

// NewDisabledService returns a Service that fails all operations with ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type service struct {
	cfg      Config
	deps     Dependencies
	selector *themeSelector
	routes   *routeBuilder
	logger   interfaces.Logger
	now      func() time.Time
}

type disabledService struct{}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deps.Renderer == nil {
		return nil, errRendererRequired
	}

	start := time.Now()
	buildCtx, err := s.loadContext(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		DryRun:      opts.DryRun,
		Diagnostics: make([]RenderDiagnostic, 0, len(buildCtx.Posts)),
	}

	siteMeta := s.cfg.Site
	siteMeta.BaseURL = strings.TrimRight(strings.TrimSpace(siteMeta.BaseURL), "/")
	if siteMeta.Metadata == nil {
		siteMeta.Metadata = map[string]any{}
	}

	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")

	var (
		mu          sync.Mutex
		rendered    = make([]RenderedArtifact, 0, len(buildCtx.Posts))
		errorsSlice []error
	)

	manifest, manifestErr := s.loadManifest(ctx)
	if manifestErr != nil {
		errorsSlice = append(errorsSlice, manifestErr)
	}
	if manifest == nil {
		manifest = newBuildManifest()
	}

	collect := func(outcome renderOutcome) {
		mu.Lock()
		defer mu.Unlock()
		result.Diagnostics = append(result.Diagnostics, outcome.diagnostic)
		if outcome.err != nil {
			errorsSlice = append(errorsSlice, outcome.err)
			return
		}
		if outcome.skipped {
			result.PostsSkipped++
			return
		}
		if outcome.artifact.Kind == artifactArchive {
			result.ArchivesBuilt++
		} else {
			result.PostsBuilt++
		}
		rendered = append(rendered, outcome.artifact)
	}

	workerCount := s.effectiveWorkerCount(len(buildCtx.Posts))
	if workerCount <= 1 || len(buildCtx.Posts) <= 1 {
		for _, post := range buildCtx.Posts {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
				collect(s.renderPost(ctx, siteMeta, buildCtx, post, manifest, baseDir))
			}
		}
	} else if err := s.renderConcurrently(ctx, siteMeta, buildCtx, workerCount, manifest, baseDir, collect); err != nil {
		errorsSlice = append(errorsSlice, err)
	}

	for _, archive := range buildCtx.Archives {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
			collect(s.renderArchive(ctx, siteMeta, buildCtx, archive))
		}
	}

	if opts.DryRun {
		result.Rendered = rendered
		result.Duration = time.Since(start)
		if len(errorsSlice) > 0 {
			result.Errors = append(result.Errors, errorsSlice...)
			return result, errors.Join(errorsSlice...)
		}
		return result, nil
	}

	writer := newArtifactWriter(s.deps.Storage)
	if err := s.persistArtifacts(ctx, writer, rendered, baseDir); err != nil {
		errorsSlice = append(errorsSlice, err)
	}

	if s.cfg.CopyAssets {
		assetSummary, err := s.copyAssets(ctx, writer, manifest, baseDir)
		if err != nil {
			errorsSlice = append(errorsSlice, err)
		} else {
			result.AssetsBuilt += assetSummary.Built
			result.AssetsSkipped += assetSummary.Skipped
		}
	}

	if s.cfg.GenerateSitemap {
		sitemapArtifacts := s.mergeRenderedForSitemap(buildCtx, rendered, manifest)
		if err := s.writeSitemap(ctx, writer, siteMeta, buildCtx, sitemapArtifacts); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateRobots {
		if err := s.writeRobots(ctx, writer, siteMeta); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateFeeds {
		feedCount, err := s.writeFeeds(ctx, writer, siteMeta, buildCtx)
		if err != nil {
			errorsSlice = append(errorsSlice, err)
		} else {
			result.FeedsBuilt += feedCount
		}
	}

	if len(errorsSlice) == 0 {
		manifest.GeneratedAt = buildCtx.GeneratedAt
		for _, artifact := range rendered {
			if artifact.Kind != artifactPost || strings.TrimSpace(artifact.Checksum) == "" {
				continue
			}
			manifest.setPost(manifestPost{
				Permalink:    artifact.Permalink,
				Route:        artifact.Route,
				Output:       artifact.Output,
				Template:     artifact.Template,
				Hash:         artifact.Metadata.Hash,
				Checksum:     artifact.Checksum,
				LastModified: artifact.Metadata.LastModified,
				RenderedAt:   buildCtx.GeneratedAt,
			})
		}
		if err := s.persistManifest(ctx, writer, manifest); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	result.Rendered = rendered
	result.Duration = time.Since(start)
	s.logger.Info("generator.build.completed",
		"posts_built", result.PostsBuilt,
		"posts_skipped", result.PostsSkipped,
		"archives_built", result.ArchivesBuilt,
		"duration_ms", result.Duration.Milliseconds(),
	)
	if len(errorsSlice) > 0 {
		result.Errors = append(result.Errors, errorsSlice...)
		return result, errors.Join(errorsSlice...)
	}
	return result, nil
}

// Clean removes the configured output directory through the storage provider.
func (s *service) Clean(ctx context.Context) error {
	if s.deps.Storage == nil {
		return nil
	}
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	if baseDir == "" {
		return nil
	}
	_, err := s.deps.Storage.Exec(ctx, storageOpRemove, baseDir)
	return err
}

func (s *service) renderConcurrently(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	workers int,
	manifest *buildManifest,
	baseDir string,
	collect func(renderOutcome),
) error {
	jobs := make(chan *PostData)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for post := range jobs {
				select {
				case <-ctx.Done():
					collect(renderOutcome{
						diagnostic: RenderDiagnostic{
							Permalink: post.Record.Permalink,
							Route:     post.Route,
							Err:       ctx.Err(),
						},
						err: ctx.Err(),
					})
					return
				default:
					collect(s.renderPost(ctx, siteMeta, buildCtx, post, manifest, baseDir))
				}
			}
		}()
	}

	for _, post := range buildCtx.Posts {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- post:
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

func (s *service) renderPost(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	data *PostData,
	manifest *buildManifest,
	baseDir string,
) renderOutcome {
	outcome := renderOutcome{
		diagnostic: RenderDiagnostic{
			Permalink: data.Record.Permalink,
			Route:     data.Route,
		},
	}

	select {
	case <-ctx.Done():
		outcome.err = ctx.Err()
		outcome.diagnostic.Err = ctx.Err()
		return outcome
	default:
	}

	selection, err := s.selector.Selection()
	if err != nil {
		outcome.err = err
		outcome.diagnostic.Err = err
		return outcome
	}

	templateName := resolveLayoutTemplate(selection, data.Record.Layout)
	if templateName == "" {
		err := fmt.Errorf("generator: post %s layout %q: %w", data.Record.Permalink, data.Record.Layout, errTemplateIdentifierMissing)
		outcome.err = err
		outcome.diagnostic.Err = err
		return outcome
	}
	outcome.diagnostic.Template = templateName

	if s.cfg.Incremental && manifest != nil {
		expectedOutput := joinOutputPath(baseDir, buildOutputPath(data.Route))
		if manifest.shouldSkipPost(data.Record.Permalink, data.Metadata.Hash, expectedOutput) {
			outcome.skipped = true
			outcome.diagnostic.Skipped = true
			return outcome
		}
	}

	templateCtx := TemplateContext{
		Site: siteMeta,
		Post: &PostRenderingContext{
			Record:   data.Record,
			Route:    data.Route,
			Metadata: data.Metadata,
		},
		Build: BuildMetadata{
			GeneratedAt: buildCtx.GeneratedAt,
			Options:     buildCtx.Options,
		},
		Theme:   buildThemeContext(selection, s.cfg.Theming),
		Helpers: newTemplateHelpers(siteMeta.BaseURL),
	}

	start := time.Now()
	html, err := s.deps.Renderer.RenderTemplate(templateName, templateCtx)
	duration := time.Since(start)
	outcome.diagnostic.Duration = duration
	if err != nil {
		wrapped := fmt.Errorf("generator: render template %q for post %s: %w", templateName, data.Record.Permalink, err)
		outcome.err = wrapped
		outcome.diagnostic.Err = wrapped
		return outcome
	}

	outcome.artifact = RenderedArtifact{
		Kind:      artifactPost,
		Permalink: data.Record.Permalink,
		Route:     data.Route,
		Template:  templateName,
		HTML:      html,
		Metadata:  data.Metadata,
		Duration:  duration,
	}
	return outcome
}

func (s *service) renderArchive(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	archive *ArchiveData,
) renderOutcome {
	outcome := renderOutcome{
		diagnostic: RenderDiagnostic{
			Permalink: archive.Route,
			Route:     archive.Route,
		},
	}

	select {
	case <-ctx.Done():
		outcome.err = ctx.Err()
		outcome.diagnostic.Err = ctx.Err()
		return outcome
	default:
	}

	selection, err := s.selector.Selection()
	if err != nil {
		outcome.err = err
		outcome.diagnostic.Err = err
		return outcome
	}

	templateName := resolveLayoutTemplate(selection, archiveLayout)
	if templateName == "" {
		err := fmt.Errorf("generator: archive %s: %w", archive.Route, errTemplateIdentifierMissing)
		outcome.err = err
		outcome.diagnostic.Err = err
		return outcome
	}
	outcome.diagnostic.Template = templateName

	templateCtx := TemplateContext{
		Site:    siteMeta,
		Archive: archive,
		Build: BuildMetadata{
			GeneratedAt: buildCtx.GeneratedAt,
			Options:     buildCtx.Options,
		},
		Theme:   buildThemeContext(selection, s.cfg.Theming),
		Helpers: newTemplateHelpers(siteMeta.BaseURL),
	}

	start := time.Now()
	html, err := s.deps.Renderer.RenderTemplate(templateName, templateCtx)
	duration := time.Since(start)
	outcome.diagnostic.Duration = duration
	if err != nil {
		wrapped := fmt.Errorf("generator: render archive %s: %w", archive.Route, err)
		outcome.err = wrapped
		outcome.diagnostic.Err = wrapped
		return outcome
	}

	outcome.artifact = RenderedArtifact{
		Kind:     artifactArchive,
		Route:    archive.Route,
		Template: templateName,
		HTML:     html,
		Metadata: archive.Metadata,
		Duration: duration,
	}
	return outcome
}

func (s *service) persistArtifacts(
	ctx context.Context,
	writer artifactWriter,
	artifacts []RenderedArtifact,
	baseDir string,
) error {
	if len(artifacts) == 0 {
		return nil
	}
	dirCache := map[string]struct{}{}
	if baseDir != "" {
		dirCache[baseDir] = struct{}{}
		if err := writer.EnsureDir(ctx, baseDir); err != nil {
			return err
		}
	}
	for i := range artifacts {
		destRel := buildOutputPath(artifacts[i].Route)
		fullPath := joinOutputPath(baseDir, destRel)
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return err
		}
		checksum := computeHashFromString(artifacts[i].HTML)
		artifacts[i].Output = fullPath
		artifacts[i].Checksum = checksum

		metadata := map[string]string{
			"route":    artifacts[i].Route,
			"template": artifacts[i].Template,
		}
		if artifacts[i].Permalink != "" {
			metadata["permalink"] = artifacts[i].Permalink
		}
		if s.cfg.Incremental {
			metadata["incremental"] = "true"
		}
		req := writeFileRequest{
			Path:        fullPath,
			Content:     strings.NewReader(artifacts[i].HTML),
			Size:        int64(len(artifacts[i].HTML)),
			Category:    categoryFor(artifacts[i].Kind),
			ContentType: "text/html; charset=utf-8",
			Checksum:    checksum,
			Metadata:    metadata,
		}
		if err := writer.WriteFile(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

type assetCopySummary struct {
	Built   int
	Skipped int
}

func (s *service) copyAssets(
	ctx context.Context,
	writer artifactWriter,
	manifest *buildManifest,
	baseDir string,
) (assetCopySummary, error) {
	summary := assetCopySummary{}
	if s.deps.Assets == nil {
		return summary, nil
	}
	dirCache := map[string]struct{}{}
	if baseDir != "" {
		dirCache[baseDir] = struct{}{}
		if err := writer.EnsureDir(ctx, baseDir); err != nil {
			return summary, err
		}
	}

	selection, err := s.selector.Selection()
	if err != nil {
		return summary, err
	}
	assets := collectThemeAssets(selection)
	for _, asset := range assets {
		reader, err := s.deps.Assets.Open(ctx, asset)
		if err != nil {
			return summary, err
		}
		data, err := readAll(reader)
		if err != nil {
			return summary, err
		}
		resolved, err := s.deps.Assets.ResolvePath(asset)
		if err != nil {
			return summary, err
		}
		resolved = strings.TrimLeft(strings.TrimSpace(resolved), "/")
		if resolved == "" {
			resolved = strings.TrimLeft(strings.TrimSpace(asset), "/")
		}
		destRel := path.Join("assets", resolved)
		fullPath := joinOutputPath(baseDir, destRel)
		checksum := computeHash(data)
		if manifest != nil && s.cfg.Incremental && manifest.shouldSkipAsset(asset, checksum, fullPath) {
			summary.Skipped++
			continue
		}
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return summary, err
		}
		req := writeFileRequest{
			Path:        fullPath,
			Content:     bytes.NewReader(data),
			Size:        int64(len(data)),
			Category:    categoryAsset,
			ContentType: detectAssetContentType(destRel),
			Checksum:    checksum,
			Metadata:    map[string]string{"asset": asset},
		}
		if err := writer.WriteFile(ctx, req); err != nil {
			return summary, err
		}
		summary.Built++
		if manifest != nil {
			manifest.setAsset(manifestAsset{
				Source:   asset,
				Output:   fullPath,
				Checksum: checksum,
				Size:     int64(len(data)),
				CopiedAt: s.now(),
			})
		}
	}
	return summary, nil
}

func (s *service) mergeRenderedForSitemap(
	buildCtx *BuildContext,
	rendered []RenderedArtifact,
	manifest *buildManifest,
) []RenderedArtifact {
	renderedByRoute := make(map[string]RenderedArtifact, len(rendered))
	for _, artifact := range rendered {
		renderedByRoute[artifact.Route] = artifact
	}

	sitemap := make([]RenderedArtifact, 0, len(buildCtx.Posts)+len(buildCtx.Archives))
	for _, data := range buildCtx.Posts {
		if artifact, ok := renderedByRoute[data.Route]; ok {
			sitemap = append(sitemap, artifact)
			continue
		}
		if manifest != nil {
			if entry, ok := manifest.lookupPost(data.Record.Permalink); ok {
				sitemap = append(sitemap, RenderedArtifact{
					Kind:      artifactPost,
					Permalink: data.Record.Permalink,
					Route:     entry.Route,
					Output:    entry.Output,
					Template:  entry.Template,
					Checksum:  entry.Checksum,
					Metadata: DependencyMetadata{
						Hash:         entry.Hash,
						LastModified: entry.LastModified,
					},
				})
				continue
			}
		}
		sitemap = append(sitemap, RenderedArtifact{
			Kind:      artifactPost,
			Permalink: data.Record.Permalink,
			Route:     data.Route,
			Metadata:  data.Metadata,
		})
	}
	for _, archive := range buildCtx.Archives {
		if artifact, ok := renderedByRoute[archive.Route]; ok {
			sitemap = append(sitemap, artifact)
			continue
		}
		sitemap = append(sitemap, RenderedArtifact{
			Kind:     artifactArchive,
			Route:    archive.Route,
			Metadata: archive.Metadata,
		})
	}
	return sitemap
}

func (s *service) loadManifest(ctx context.Context) (*buildManifest, error) {
	if s.deps.Storage == nil {
		return newBuildManifest(), nil
	}
	target := s.manifestTargetPath()
	if strings.TrimSpace(target) == "" {
		return newBuildManifest(), nil
	}
	rows, err := s.deps.Storage.Query(ctx, storageOpRead, target)
	if err != nil {
		return nil, fmt.Errorf("generator: read manifest: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return newBuildManifest(), nil
	}
	var data []byte
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("generator: scan manifest: %w", err)
	}
	return parseManifest(data)
}

func (s *service) manifestTargetPath() string {
	base := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	return joinOutputPath(base, manifestFileName)
}

func (s *service) persistManifest(ctx context.Context, writer artifactWriter, manifest *buildManifest) error {
	if manifest == nil {
		return nil
	}
	data, err := manifest.marshal()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	target := s.manifestTargetPath()
	if strings.TrimSpace(target) == "" {
		return nil
	}
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(target)); err != nil {
		return err
	}
	metadata := map[string]string{
		"version": strconv.Itoa(manifest.Version),
	}
	if !manifest.GeneratedAt.IsZero() {
		metadata["generated_at"] = manifest.GeneratedAt.UTC().Format(time.RFC3339)
	}
	req := writeFileRequest{
		Path:        target,
		Content:     bytes.NewReader(data),
		Size:        int64(len(data)),
		Category:    categoryManifest,
		ContentType: "application/json",
		Checksum:    computeHash(data),
		Metadata:    metadata,
	}
	return writer.WriteFile(ctx, req)
}

func (s *service) writeSitemap(
	ctx context.Context,
	writer artifactWriter,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	artifacts []RenderedArtifact,
) error {
	content := buildSitemap(siteMeta.BaseURL, artifacts, buildCtx.GeneratedAt)
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	fullPath := joinOutputPath(baseDir, "sitemap.xml")
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(fullPath)); err != nil {
		return err
	}
	req := writeFileRequest{
		Path:        fullPath,
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    categorySitemap,
		ContentType: "application/xml",
		Checksum:    computeHashFromString(content),
		Metadata: map[string]string{
			"generated_at": buildCtx.GeneratedAt.UTC().Format(time.RFC3339),
		},
	}
	return writer.WriteFile(ctx, req)
}

func (s *service) writeRobots(
	ctx context.Context,
	writer artifactWriter,
	siteMeta SiteMetadata,
) error {
	content := buildRobots(siteMeta.BaseURL, s.cfg.GenerateSitemap)
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	fullPath := joinOutputPath(baseDir, "robots.txt")
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(fullPath)); err != nil {
		return err
	}
	req := writeFileRequest{
		Path:        fullPath,
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    categoryRobots,
		ContentType: "text/plain; charset=utf-8",
		Checksum:    computeHashFromString(content),
		Metadata: map[string]string{
			"generated_at": s.now().UTC().Format(time.RFC3339),
		},
	}
	return writer.WriteFile(ctx, req)
}

func (s *service) effectiveWorkerCount(postCount int) int {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if postCount > 0 && workers > postCount {
		return postCount
	}
	return workers
}

func categoryFor(kind artifactKind) writeCategory {
	if kind == artifactArchive {
		return categoryArchive
	}
	return categoryPost
}

func ensureDir(ctx context.Context, writer artifactWriter, cache map[string]struct{}, dir string) error {
	dir = strings.Trim(dir, " ")
	if dir == "" || dir == "." {
		return nil
	}
	if cache != nil {
		if _, ok := cache[dir]; ok {
			return nil
		}
		cache[dir] = struct{}{}
	}
	return writer.EnsureDir(ctx, dir)
}

func joinOutputPath(base string, rel string) string {
	if strings.TrimSpace(base) == "" {
		return strings.TrimLeft(rel, "/")
	}
	return path.Join(strings.Trim(base, "/"), rel)
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func computeHashFromString(content string) string {
	return computeHash([]byte(content))
}

func (disabledService) Build(context.Context, BuildOptions) (*BuildResult, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) Clean(context.Context) error {
	return ErrServiceDisabled
}
