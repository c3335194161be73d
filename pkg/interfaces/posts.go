package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostService is the persistence contract consumed by the markdown importer
// and the static site generator. The internal post service satisfies it; test
// code can substitute lightweight stubs.
type PostService interface {
	Create(ctx context.Context, req PostCreateRequest) (*PostRecord, error)
	Update(ctx context.Context, req PostUpdateRequest) (*PostRecord, error)
	Delete(ctx context.Context, req PostDeleteRequest) error
	GetByPermalink(ctx context.Context, permalink string) (*PostRecord, error)
	List(ctx context.Context, opts PostListOptions) ([]*PostRecord, error)
}

// PostRecord is the transport-neutral projection of a stored post.
type PostRecord struct {
	ID          uuid.UUID
	Layout      string
	Title       string
	Date        time.Time
	Comments    bool
	Published   bool
	Categories  []string
	Tags        []string
	Permalink   string
	Body        string
	BodyHTML    string
	SourcePath  string
	Checksum    string
	PublishedAt *time.Time
	// DeletedAt marks soft-deleted records; importers use it to restore a
	// post whose source file returned to the corpus.
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	Metadata  map[string]any
}

// PostCreateRequest captures the inputs required to persist a new post.
type PostCreateRequest struct {
	Layout     string
	Title      string
	Date       time.Time
	Comments   bool
	Published  bool
	Categories []string
	Tags       []string
	Permalink  string
	Body       string
	BodyHTML   string
	SourcePath string
	Checksum   string
	AuthorID   string
	Metadata   map[string]any
}

// PostUpdateRequest mutates an existing post in place.
type PostUpdateRequest struct {
	ID         uuid.UUID
	Layout     string
	Title      string
	Date       time.Time
	Comments   bool
	Published  bool
	Categories []string
	Tags       []string
	Permalink  string
	Body       string
	BodyHTML   string
	SourcePath string
	Checksum   string
	AuthorID   string
	Metadata   map[string]any
}

// PostDeleteRequest removes a post, optionally bypassing soft delete.
type PostDeleteRequest struct {
	ID         uuid.UUID
	HardDelete bool
}

// PostListOptions narrows List results.
type PostListOptions struct {
	// PublishedOnly excludes posts with published=false.
	PublishedOnly bool
	// Category and Tag filter by membership when non-empty.
	Category string
	Tag      string
	// IncludeDeleted returns soft-deleted records as well.
	IncludeDeleted bool
}
