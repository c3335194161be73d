package post

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// MemoryPostRepository is an in-memory implementation for scaffolding and tests.
type MemoryPostRepository struct {
	mu             sync.RWMutex
	posts          map[uuid.UUID]*blogpost.Post
	permalinkIndex map[string]uuid.UUID
}

// NewMemoryPostRepository creates an empty in-memory post repository.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts:          make(map[uuid.UUID]*blogpost.Post),
		permalinkIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied post.
func (m *MemoryPostRepository) Create(_ context.Context, record *blogpost.Post) (*blogpost.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := clonePost(record)
	m.posts[copied.ID] = copied
	m.permalinkIndex[permalinkKey(copied.Permalink)] = copied.ID
	return clonePost(copied), nil
}

// GetByID retrieves a post by identifier.
func (m *MemoryPostRepository) GetByID(_ context.Context, id uuid.UUID) (*blogpost.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.posts[id]
	if !ok {
		return nil, &blogpost.NotFoundError{Resource: "post", Key: id.String()}
	}
	return clonePost(rec), nil
}

// GetByPermalink retrieves a post by permalink, returning NotFoundError when absent.
func (m *MemoryPostRepository) GetByPermalink(_ context.Context, permalink string) (*blogpost.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.permalinkIndex[permalinkKey(permalink)]
	if !ok {
		return nil, &blogpost.NotFoundError{Resource: "post", Key: permalink}
	}
	return clonePost(m.posts[id]), nil
}

// List returns stored posts, excluding soft-deleted records unless asked.
func (m *MemoryPostRepository) List(_ context.Context, includeDeleted bool) ([]*blogpost.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*blogpost.Post, 0, len(m.posts))
	for _, rec := range m.posts {
		if !includeDeleted && rec.DeletedAt != nil {
			continue
		}
		out = append(out, clonePost(rec))
	}
	return out, nil
}

// Update replaces an existing post in place.
func (m *MemoryPostRepository) Update(_ context.Context, record *blogpost.Post) (*blogpost.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.posts[record.ID]
	if !ok {
		return nil, &blogpost.NotFoundError{Resource: "post", Key: record.ID.String()}
	}

	delete(m.permalinkIndex, permalinkKey(existing.Permalink))
	copied := clonePost(record)
	m.posts[copied.ID] = copied
	m.permalinkIndex[permalinkKey(copied.Permalink)] = copied.ID
	return clonePost(copied), nil
}

// Delete removes or soft-deletes a post.
func (m *MemoryPostRepository) Delete(_ context.Context, id uuid.UUID, hardDelete bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.posts[id]
	if !ok {
		return &blogpost.NotFoundError{Resource: "post", Key: id.String()}
	}

	if hardDelete {
		delete(m.permalinkIndex, permalinkKey(rec.Permalink))
		delete(m.posts, id)
		return nil
	}

	if rec.DeletedAt != nil {
		return blogpost.ErrSoftDeleteConflict
	}
	now := time.Now()
	rec.DeletedAt = &now
	return nil
}

func permalinkKey(permalink string) string {
	return strings.TrimSpace(permalink)
}

func clonePost(src *blogpost.Post) *blogpost.Post {
	if src == nil {
		return nil
	}

	copied := *src
	copied.Categories = append([]string(nil), src.Categories...)
	copied.Tags = append([]string(nil), src.Tags...)
	if src.Metadata != nil {
		copied.Metadata = make(map[string]any, len(src.Metadata))
		for k, v := range src.Metadata {
			copied.Metadata[k] = v
		}
	}
	if src.PublishedAt != nil {
		at := *src.PublishedAt
		copied.PublishedAt = &at
	}
	if src.DeletedAt != nil {
		at := *src.DeletedAt
		copied.DeletedAt = &at
	}
	return &copied
}
