package post

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/identity"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/validation"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/activity"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// PostRepository abstracts storage operations for post entities.
type PostRepository interface {
	Create(ctx context.Context, record *blogpost.Post) (*blogpost.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*blogpost.Post, error)
	GetByPermalink(ctx context.Context, permalink string) (*blogpost.Post, error)
	List(ctx context.Context, includeDeleted bool) ([]*blogpost.Post, error)
	Update(ctx context.Context, record *blogpost.Post) (*blogpost.Post, error)
	Delete(ctx context.Context, id uuid.UUID, hardDelete bool) error
}

// Service exposes post management use-cases. It widens the public
// interfaces.PostService contract with publish workflows.
type Service interface {
	interfaces.PostService
	GetByID(ctx context.Context, id uuid.UUID) (*interfaces.PostRecord, error)
	Publish(ctx context.Context, permalink string) (*interfaces.PostRecord, error)
	Unpublish(ctx context.Context, permalink string) (*interfaces.PostRecord, error)
}

// IDGenerator derives a record ID from the permalink.
type IDGenerator func(permalink string) uuid.UUID

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides how record IDs are derived.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithActivityNotifier emits domain events to the supplied notifier.
func WithActivityNotifier(notifier activity.Notifier) ServiceOption {
	return func(s *service) {
		if notifier != nil {
			s.activity = notifier
		}
	}
}

// WithFrontMatterSchema overrides the schema used to validate front matter
// payloads carried in request metadata.
func WithFrontMatterSchema(schema map[string]any) ServiceOption {
	return func(s *service) {
		s.schema = schema
	}
}

type service struct {
	posts    PostRepository
	now      func() time.Time
	id       IDGenerator
	logger   interfaces.Logger
	activity activity.Notifier
	schema   map[string]any
}

// NewService constructs a post service with the required dependencies.
func NewService(posts PostRepository, opts ...ServiceOption) (Service, error) {
	if posts == nil {
		return nil, blogpost.ErrRepositoryRequired
	}

	s := &service{
		posts:    posts,
		now:      time.Now,
		id:       identity.PostUUID,
		logger:   logging.NoOp(),
		activity: activity.NoOp(),
		schema:   blogpost.FrontMatterSchema,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Create persists a new post after validating the corpus invariants.
func (s *service) Create(ctx context.Context, req interfaces.PostCreateRequest) (*interfaces.PostRecord, error) {
	permalink := strings.TrimSpace(req.Permalink)
	if err := s.validateWrite(req.Title, permalink, req.Date, req.Body, req.Metadata); err != nil {
		return nil, err
	}

	if existing, err := s.posts.GetByPermalink(ctx, permalink); err == nil && existing != nil {
		return nil, &blogpost.PermalinkConflictError{
			Permalink:  permalink,
			ExistingID: existing.ID,
			SourcePath: req.SourcePath,
		}
	} else if err != nil && !errors.Is(err, blogpost.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	record := &blogpost.Post{
		ID:         s.id(permalink),
		Layout:     chooseLayout(req.Layout),
		Title:      strings.TrimSpace(req.Title),
		Date:       req.Date,
		Comments:   req.Comments,
		Published:  req.Published,
		Categories: append([]string(nil), req.Categories...),
		Tags:       append([]string(nil), req.Tags...),
		Permalink:  permalink,
		Body:       req.Body,
		BodyHTML:   req.BodyHTML,
		SourcePath: req.SourcePath,
		Checksum:   req.Checksum,
		Metadata:   req.Metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Published {
		record.PublishedAt = &now
	}

	created, err := s.posts.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("post create %s: %w", permalink, err)
	}

	s.logger.Info("post.created", "permalink", permalink, "published", created.Published)
	s.notify(ctx, "post:create", created, req.AuthorID)
	return toRecord(created), nil
}

// Update mutates an existing post.
func (s *service) Update(ctx context.Context, req interfaces.PostUpdateRequest) (*interfaces.PostRecord, error) {
	if req.ID == uuid.Nil {
		return nil, blogpost.ErrIDRequired
	}
	permalink := strings.TrimSpace(req.Permalink)
	if err := s.validateWrite(req.Title, permalink, req.Date, req.Body, req.Metadata); err != nil {
		return nil, err
	}

	existing, err := s.posts.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if permalink != existing.Permalink {
		if other, lookupErr := s.posts.GetByPermalink(ctx, permalink); lookupErr == nil && other != nil && other.ID != existing.ID {
			return nil, &blogpost.PermalinkConflictError{
				Permalink:  permalink,
				ExistingID: other.ID,
				SourcePath: req.SourcePath,
			}
		} else if lookupErr != nil && !errors.Is(lookupErr, blogpost.ErrNotFound) {
			return nil, lookupErr
		}
	}

	now := s.now()
	existing.Layout = chooseLayout(req.Layout)
	existing.Title = strings.TrimSpace(req.Title)
	existing.Date = req.Date
	existing.Comments = req.Comments
	existing.Categories = append([]string(nil), req.Categories...)
	existing.Tags = append([]string(nil), req.Tags...)
	existing.Permalink = permalink
	existing.Body = req.Body
	existing.BodyHTML = req.BodyHTML
	existing.SourcePath = req.SourcePath
	existing.Checksum = req.Checksum
	existing.Metadata = req.Metadata
	existing.UpdatedAt = now
	// An update supersedes any earlier soft delete; the record becomes
	// visible again.
	existing.DeletedAt = nil

	if req.Published && !existing.Published {
		existing.PublishedAt = &now
	}
	if !req.Published {
		existing.PublishedAt = nil
	}
	existing.Published = req.Published

	updated, err := s.posts.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("post update %s: %w", permalink, err)
	}

	s.logger.Info("post.updated", "permalink", permalink, "published", updated.Published)
	s.notify(ctx, "post:update", updated, req.AuthorID)
	return toRecord(updated), nil
}

// Delete removes a post, soft by default.
func (s *service) Delete(ctx context.Context, req interfaces.PostDeleteRequest) error {
	if req.ID == uuid.Nil {
		return blogpost.ErrIDRequired
	}

	record, err := s.posts.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, req.ID, req.HardDelete); err != nil {
		return err
	}

	s.logger.Info("post.deleted", "permalink", record.Permalink, "hard", req.HardDelete)
	s.notify(ctx, "post:delete", record, "")
	return nil
}

// GetByID fetches a post by record identifier.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*interfaces.PostRecord, error) {
	if id == uuid.Nil {
		return nil, blogpost.ErrIDRequired
	}
	record, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRecord(record), nil
}

// GetByPermalink fetches a post by its natural identifier.
func (s *service) GetByPermalink(ctx context.Context, permalink string) (*interfaces.PostRecord, error) {
	permalink = strings.TrimSpace(permalink)
	if permalink == "" {
		return nil, blogpost.ErrPermalinkRequired
	}
	record, err := s.posts.GetByPermalink(ctx, permalink)
	if err != nil {
		return nil, err
	}
	return toRecord(record), nil
}

// List returns posts ordered by date, newest first.
func (s *service) List(ctx context.Context, opts interfaces.PostListOptions) ([]*interfaces.PostRecord, error) {
	records, err := s.posts.List(ctx, opts.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	out := make([]*interfaces.PostRecord, 0, len(records))
	for _, record := range records {
		if opts.PublishedOnly && !record.IsVisible() {
			continue
		}
		if opts.Category != "" && !containsFold(record.Categories, opts.Category) {
			continue
		}
		if opts.Tag != "" && !containsFold(record.Tags, opts.Tag) {
			continue
		}
		out = append(out, toRecord(record))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].Permalink < out[j].Permalink
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// Publish flips a post to published and stamps PublishedAt.
func (s *service) Publish(ctx context.Context, permalink string) (*interfaces.PostRecord, error) {
	record, err := s.posts.GetByPermalink(ctx, strings.TrimSpace(permalink))
	if err != nil {
		return nil, err
	}
	if record.Published {
		return nil, blogpost.ErrAlreadyPublished
	}

	now := s.now()
	record.Published = true
	record.PublishedAt = &now
	record.UpdatedAt = now

	updated, err := s.posts.Update(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("post publish %s: %w", permalink, err)
	}
	s.logger.Info("post.published", "permalink", updated.Permalink)
	s.notify(ctx, "post:publish", updated, "")
	return toRecord(updated), nil
}

// Unpublish hides a post without deleting it.
func (s *service) Unpublish(ctx context.Context, permalink string) (*interfaces.PostRecord, error) {
	record, err := s.posts.GetByPermalink(ctx, strings.TrimSpace(permalink))
	if err != nil {
		return nil, err
	}
	if !record.Published {
		return nil, blogpost.ErrAlreadyUnpublished
	}

	now := s.now()
	record.Published = false
	record.PublishedAt = nil
	record.UpdatedAt = now

	updated, err := s.posts.Update(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("post unpublish %s: %w", permalink, err)
	}
	s.logger.Info("post.unpublished", "permalink", updated.Permalink)
	s.notify(ctx, "post:unpublish", updated, "")
	return toRecord(updated), nil
}

func (s *service) validateWrite(title, permalink string, date time.Time, body string, metadata map[string]any) error {
	if strings.TrimSpace(title) == "" {
		return blogpost.ErrTitleRequired
	}
	if permalink == "" {
		return blogpost.ErrPermalinkRequired
	}
	if !isValidPermalink(permalink) {
		return fmt.Errorf("%w: %q", blogpost.ErrPermalinkInvalid, permalink)
	}
	if date.IsZero() {
		return blogpost.ErrDateRequired
	}
	if strings.TrimSpace(body) == "" {
		return blogpost.ErrBodyRequired
	}
	payload, ok, err := frontMatterPayload(metadata)
	if err != nil {
		return err
	}
	if ok {
		if err := validation.ValidatePayload(s.schema, payload); err != nil {
			return fmt.Errorf("%w: %v", blogpost.ErrFrontMatterInvalid, err)
		}
	}
	return nil
}

func (s *service) notify(ctx context.Context, verb string, record *blogpost.Post, actorID string) {
	if s.activity == nil || record == nil {
		return
	}
	event := activity.Event{
		Verb:       verb,
		ActorID:    actorID,
		ObjectType: "post",
		ObjectID:   record.ID.String(),
		Metadata: map[string]any{
			"permalink": record.Permalink,
			"title":     record.Title,
		},
		OccurredAt: s.now(),
	}
	if err := s.activity.Notify(ctx, event); err != nil {
		s.logger.Warn("post.activity_failed", "verb", verb, "error", err)
	}
}

// frontMatterPayload digs the raw front matter map out of request metadata.
// Imports store it under metadata.frontmatter; a value of any other shape is
// a malformed request.
func frontMatterPayload(metadata map[string]any) (map[string]any, bool, error) {
	if metadata == nil {
		return nil, false, nil
	}
	value, ok := metadata["frontmatter"]
	if !ok || value == nil {
		return nil, false, nil
	}
	payload, ok := value.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("%w: frontmatter payload is %T", blogpost.ErrMetadataInvalid, value)
	}
	if len(payload) == 0 {
		return nil, false, nil
	}
	return payload, true, nil
}

func chooseLayout(layout string) string {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return "post"
	}
	return layout
}

// isValidPermalink accepts rooted paths made of slug segments, matching the
// corpus convention of /some-post-title/.
func isValidPermalink(permalink string) bool {
	if !strings.HasPrefix(permalink, "/") {
		return false
	}
	if strings.ContainsAny(permalink, " \t\n") {
		return false
	}
	trimmed := strings.Trim(permalink, "/")
	if trimmed == "" {
		return false
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if segment == "" {
			return false
		}
		if !blogpost.IsValidSlug(segment) {
			return false
		}
	}
	return true
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}

func toRecord(record *blogpost.Post) *interfaces.PostRecord {
	if record == nil {
		return nil
	}
	return &interfaces.PostRecord{
		ID:          record.ID,
		Layout:      record.Layout,
		Title:       record.Title,
		Date:        record.Date,
		Comments:    record.Comments,
		Published:   record.Published,
		Categories:  append([]string(nil), record.Categories...),
		Tags:        append([]string(nil), record.Tags...),
		Permalink:   record.Permalink,
		Body:        record.Body,
		BodyHTML:    record.BodyHTML,
		SourcePath:  record.SourcePath,
		Checksum:    record.Checksum,
		PublishedAt: record.PublishedAt,
		DeletedAt:   record.DeletedAt,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
		Metadata:    record.Metadata,
	}
}
