package markdown

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	"github.com/code-bluecomment/code-bluecomment.github.io/post"
)

var (
	ErrPostServiceRequired = errors.New("markdown importer: post service is required")
	ErrPermalinkMissing    = errors.New("markdown importer: permalink could not be determined")
	ErrDateMissing         = errors.New("markdown importer: post date could not be determined")
)

// ImporterConfig encapsulates dependencies required to persist post documents.
type ImporterConfig struct {
	Posts  interfaces.PostService
	Logger interfaces.Logger
}

// Importer orchestrates conversion of Markdown documents into post records.
// Repeated runs converge: unchanged files are skipped by checksum, changed
// files update the existing record behind the same permalink.
type Importer struct {
	posts  interfaces.PostService
	logger interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		posts:  cfg.Posts,
		logger: logger,
	}
}

// ImportDocument imports a single post document.
func (i *Importer) ImportDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if i.posts == nil {
		return nil, ErrPostServiceRequired
	}
	acc := newImportAccumulator()
	if err := i.applyDocument(ctx, doc, opts, true, acc); err != nil {
		acc.addError(err)
	}
	return acc.result(), firstError(acc.errors)
}

// ImportDocuments imports an arbitrary slice of documents. Two documents
// resolving to the same permalink are a corpus defect and fail the import.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if i.posts == nil {
		return nil, ErrPostServiceRequired
	}

	acc := newImportAccumulator()
	seen := map[string]string{}
	for _, doc := range docs {
		permalink := EffectivePermalink(doc)
		if prior, ok := seen[permalink]; ok && permalink != "" {
			acc.addError(&post.PermalinkConflictError{
				Permalink:  permalink,
				SourcePath: doc.FilePath,
				OtherPath:  prior,
			})
			continue
		}
		if permalink != "" {
			seen[permalink] = doc.FilePath
		}
		if err := i.applyDocument(ctx, doc, opts, true, acc); err != nil {
			acc.addError(err)
		}
	}
	return acc.result(), firstError(acc.errors)
}

// SyncDocuments imports all provided documents and optionally deletes posts
// whose source files disappeared from the corpus.
func (i *Importer) SyncDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	if i.posts == nil {
		return nil, ErrPostServiceRequired
	}

	acc := newSyncAccumulator()
	seen := map[string]string{}
	imp := newImportAccumulator()

	for _, doc := range docs {
		permalink := EffectivePermalink(doc)
		if prior, ok := seen[permalink]; ok && permalink != "" {
			imp.addError(&post.PermalinkConflictError{
				Permalink:  permalink,
				SourcePath: doc.FilePath,
				OtherPath:  prior,
			})
			continue
		}
		if permalink != "" {
			seen[permalink] = doc.FilePath
		}
		if err := i.applyDocument(ctx, doc, opts.ImportOptions, opts.UpdateExisting, imp); err != nil {
			imp.addError(err)
		}
	}
	acc.merge(imp.result())

	if opts.DeleteOrphaned {
		if err := i.deleteOrphaned(ctx, seen, opts, acc); err != nil {
			acc.addError(err)
		}
	}

	return acc.result(), firstError(acc.errors)
}

func (i *Importer) applyDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions, updateExisting bool, acc *importAccumulator) error {
	if err := validateDocument(doc); err != nil {
		return err
	}

	permalink := EffectivePermalink(doc)
	checksum := hex.EncodeToString(doc.Checksum)

	existing, err := i.posts.GetByPermalink(ctx, permalink)
	if err != nil && !errors.Is(err, post.ErrNotFound) {
		return fmt.Errorf("markdown importer: post lookup %s: %w", permalink, err)
	}

	if existing == nil {
		if opts.DryRun {
			acc.skip(permalink)
			return nil
		}
		if _, err := i.posts.Create(ctx, buildCreateRequest(doc, permalink, checksum, opts)); err != nil {
			return fmt.Errorf("markdown importer: create post %s: %w", permalink, err)
		}
		i.logger.Debug("importer.created", "permalink", permalink, "path", doc.FilePath)
		acc.created(permalink)
		return nil
	}

	// A matching checksum only counts as converged when the record is
	// visible; a soft-deleted record whose source file returned must be
	// restored through an update.
	if existing.Checksum == checksum && existing.DeletedAt == nil {
		acc.skip(permalink)
		return nil
	}

	if !updateExisting || opts.DryRun {
		acc.skip(permalink)
		return nil
	}

	update := buildUpdateRequest(existing, doc, permalink, checksum, opts)
	if _, err := i.posts.Update(ctx, update); err != nil {
		return fmt.Errorf("markdown importer: update post %s: %w", permalink, err)
	}
	i.logger.Debug("importer.updated", "permalink", permalink, "path", doc.FilePath)
	acc.updated(permalink)
	return nil
}

func (i *Importer) deleteOrphaned(ctx context.Context, seen map[string]string, opts interfaces.SyncOptions, acc *syncAccumulator) error {
	existing, err := i.posts.List(ctx, interfaces.PostListOptions{})
	if err != nil {
		return fmt.Errorf("markdown importer: list posts: %w", err)
	}

	for _, record := range existing {
		if _, ok := seen[record.Permalink]; ok {
			continue
		}
		if opts.DryRun {
			acc.deleted++
			continue
		}
		deleteReq := interfaces.PostDeleteRequest{
			ID:         record.ID,
			HardDelete: false,
		}
		if err := i.posts.Delete(ctx, deleteReq); err != nil {
			return fmt.Errorf("markdown importer: delete post %s: %w", record.Permalink, err)
		}
		i.logger.Debug("importer.deleted", "permalink", record.Permalink)
		acc.deleted++
	}

	return nil
}

// EffectivePermalink resolves the permalink a document publishes under: the
// front matter permalink when present, otherwise the date route derived from
// the filename.
func EffectivePermalink(doc *interfaces.Document) string {
	if doc == nil {
		return ""
	}
	if permalink := strings.TrimSpace(doc.FrontMatter.Permalink); permalink != "" {
		return permalink
	}
	if doc.FileSlug != "" && !doc.FileDate.IsZero() {
		return DateRoute(doc.FileDate, doc.FileSlug)
	}
	return ""
}

func validateDocument(doc *interfaces.Document) error {
	if doc == nil {
		return errors.New("markdown importer: nil document")
	}
	if EffectivePermalink(doc) == "" {
		return fmt.Errorf("%w: %s", ErrPermalinkMissing, doc.FilePath)
	}
	if effectiveDate(doc).IsZero() {
		return fmt.Errorf("%w: %s", ErrDateMissing, doc.FilePath)
	}
	return nil
}

func effectiveDate(doc *interfaces.Document) time.Time {
	if !doc.FrontMatter.Date.IsZero() {
		return doc.FrontMatter.Date
	}
	return doc.FileDate
}

func effectiveTitle(doc *interfaces.Document) string {
	if title := strings.TrimSpace(doc.FrontMatter.Title); title != "" {
		return title
	}
	return fallbackTitle(doc.FileSlug)
}

func effectiveLayout(doc *interfaces.Document, opts interfaces.ImportOptions) string {
	if layout := strings.TrimSpace(doc.FrontMatter.Layout); layout != "" {
		return layout
	}
	if layout := strings.TrimSpace(opts.DefaultLayout); layout != "" {
		return layout
	}
	return "post"
}

func fallbackTitle(slug string) string {
	if slug == "" {
		return "Untitled"
	}
	words := strings.Fields(strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " "))
	for idx, word := range words {
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func buildCreateRequest(doc *interfaces.Document, permalink, checksum string, opts interfaces.ImportOptions) interfaces.PostCreateRequest {
	return interfaces.PostCreateRequest{
		Layout:     effectiveLayout(doc, opts),
		Title:      effectiveTitle(doc),
		Date:       effectiveDate(doc),
		Comments:   doc.FrontMatter.CommentsEnabled(),
		Published:  doc.FrontMatter.IsPublished(),
		Categories: append([]string(nil), doc.FrontMatter.Categories...),
		Tags:       append([]string(nil), doc.FrontMatter.Tags...),
		Permalink:  permalink,
		Body:       string(doc.Body),
		BodyHTML:   string(doc.BodyHTML),
		SourcePath: doc.FilePath,
		Checksum:   checksum,
		AuthorID:   opts.AuthorID,
		Metadata:   documentMetadata(doc),
	}
}

func buildUpdateRequest(existing *interfaces.PostRecord, doc *interfaces.Document, permalink, checksum string, opts interfaces.ImportOptions) interfaces.PostUpdateRequest {
	return interfaces.PostUpdateRequest{
		ID:         existing.ID,
		Layout:     effectiveLayout(doc, opts),
		Title:      effectiveTitle(doc),
		Date:       effectiveDate(doc),
		Comments:   doc.FrontMatter.CommentsEnabled(),
		Published:  doc.FrontMatter.IsPublished(),
		Categories: append([]string(nil), doc.FrontMatter.Categories...),
		Tags:       append([]string(nil), doc.FrontMatter.Tags...),
		Permalink:  permalink,
		Body:       string(doc.Body),
		BodyHTML:   string(doc.BodyHTML),
		SourcePath: doc.FilePath,
		Checksum:   checksum,
		AuthorID:   opts.AuthorID,
		Metadata:   documentMetadata(doc),
	}
}

func documentMetadata(doc *interfaces.Document) map[string]any {
	return map[string]any{
		"source":      "markdown",
		"path":        doc.FilePath,
		"checksum":    hex.EncodeToString(doc.Checksum),
		"frontmatter": doc.FrontMatter.Raw,
		"modified":    doc.LastModified,
	}
}

type importAccumulator struct {
	createdPermalinks []string
	updatedPermalinks []string
	skippedPermalinks []string
	errors            []error
}

func newImportAccumulator() *importAccumulator {
	return &importAccumulator{
		createdPermalinks: []string{},
		updatedPermalinks: []string{},
		skippedPermalinks: []string{},
		errors:            []error{},
	}
}

func (a *importAccumulator) created(permalink string) {
	if permalink != "" {
		a.createdPermalinks = append(a.createdPermalinks, permalink)
	}
}

func (a *importAccumulator) updated(permalink string) {
	if permalink != "" {
		a.updatedPermalinks = append(a.updatedPermalinks, permalink)
	}
}

func (a *importAccumulator) skip(permalink string) {
	if permalink != "" {
		a.skippedPermalinks = append(a.skippedPermalinks, permalink)
	}
}

func (a *importAccumulator) addError(err error) {
	if err != nil {
		a.errors = append(a.errors, err)
	}
}

func (a *importAccumulator) result() *interfaces.ImportResult {
	return &interfaces.ImportResult{
		CreatedPermalinks: a.createdPermalinks,
		UpdatedPermalinks: a.updatedPermalinks,
		SkippedPermalinks: a.skippedPermalinks,
		Errors:            a.errors,
	}
}

type syncAccumulator struct {
	created int
	updated int
	deleted int
	skipped int
	errors  []error
}

func newSyncAccumulator() *syncAccumulator {
	return &syncAccumulator{
		errors: []error{},
	}
}

func (s *syncAccumulator) merge(res *interfaces.ImportResult) {
	if res == nil {
		return
	}
	s.created += len(res.CreatedPermalinks)
	s.updated += len(res.UpdatedPermalinks)
	s.skipped += len(res.SkippedPermalinks)
	s.errors = append(s.errors, res.Errors...)
}

func (s *syncAccumulator) addError(err error) {
	if err != nil {
		s.errors = append(s.errors, err)
	}
}

func (s *syncAccumulator) result() *interfaces.SyncResult {
	return &interfaces.SyncResult{
		Created: s.created,
		Updated: s.updated,
		Deleted: s.deleted,
		Skipped: s.skipped,
		Errors:  s.errors,
	}
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
