package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across documents without extra locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the file workflows for the post corpus: load
// Markdown documents, convert them into HTML, and synchronise them with the
// post store.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	Import(ctx context.Context, doc *Document, opts ImportOptions) (*ImportResult, error)
	ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error)
	Sync(ctx context.Context, dir string, opts SyncOptions) (*SyncResult, error)
}

// Document represents a post source file with parsed metadata and content.
// The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath    string
	FrontMatter FrontMatter
	Body        []byte
	BodyHTML    []byte
	// FileSlug and FileDate are derived from the YYYY-MM-DD-slug.markdown
	// naming convention and act as fallbacks when front matter omits the
	// corresponding keys.
	FileSlug     string
	FileDate     time.Time
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so
	// sync workflows can detect changes without re-importing unchanged files.
	Checksum []byte
}

// FrontMatter models the metadata block at the top of each post file. The
// field set matches the keys the corpus uses; anything else lands in Custom.
type FrontMatter struct {
	Layout     string         `yaml:"layout" json:"layout"`
	Title      string         `yaml:"title" json:"title"`
	Date       time.Time      `yaml:"-" json:"date"`
	Comments   *bool          `yaml:"comments" json:"comments,omitempty"`
	Published  *bool          `yaml:"published" json:"published,omitempty"`
	Categories []string       `yaml:"categories" json:"categories"`
	Tags       []string       `yaml:"tags" json:"tags"`
	Permalink  string         `yaml:"permalink" json:"permalink"`
	Custom     map[string]any `yaml:",inline" json:"custom"`
	Raw        map[string]any `yaml:"-" json:"raw"`
}

// IsPublished reports the effective published flag. Absent means published,
// matching the corpus convention where only explicit `published: false`
// hides a post.
func (fm FrontMatter) IsPublished() bool {
	return fm.Published == nil || *fm.Published
}

// CommentsEnabled reports the effective comments flag, defaulting to true.
func (fm FrontMatter) CommentsEnabled() bool {
	return fm.Comments == nil || *fm.Comments
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}

// ImportOptions controls how documents are converted into post records.
type ImportOptions struct {
	AuthorID      string
	DefaultLayout string
	DryRun        bool
}

// SyncOptions extends ImportOptions with update/delete semantics for
// repeated synchronisation runs.
type SyncOptions struct {
	ImportOptions
	DeleteOrphaned bool
	UpdateExisting bool
}

// ImportResult reports the outcome of an import operation, exposing counts
// and permalinks so callers can audit behaviour or trigger follow-up actions.
type ImportResult struct {
	CreatedPermalinks []string
	UpdatedPermalinks []string
	SkippedPermalinks []string
	Errors            []error
}

// SyncResult summarises a bulk sync run across many files.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
	Skipped int
	Errors  []error
}
