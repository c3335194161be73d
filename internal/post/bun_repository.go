package post

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// BunPostRepository implements PostRepository on top of bun with optional
// read-through caching.
type BunPostRepository struct {
	db   *bun.DB
	repo repository.Repository[*blogpost.Post]
}

// NewBunPostRepository creates a post repository without caching.
func NewBunPostRepository(db *bun.DB) *BunPostRepository {
	return NewBunPostRepositoryWithCache(db, nil, nil)
}

// NewBunPostRepositoryWithCache creates a post repository with caching services.
func NewBunPostRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPostRepository {
	base := NewPostRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunPostRepository{
		db:   db,
		repo: base,
	}
}

func (r *BunPostRepository) Create(ctx context.Context, record *blogpost.Post) (*blogpost.Post, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*blogpost.Post, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "post", id.String())
	}
	return record, nil
}

func (r *BunPostRepository) GetByPermalink(ctx context.Context, permalink string) (*blogpost.Post, error) {
	record, err := r.repo.GetByIdentifier(ctx, permalink)
	if err != nil {
		return nil, mapRepositoryError(err, "post", permalink)
	}
	return record, nil
}

func (r *BunPostRepository) List(ctx context.Context, includeDeleted bool) ([]*blogpost.Post, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return records, nil
	}
	out := make([]*blogpost.Post, 0, len(records))
	for _, record := range records {
		if record.DeletedAt == nil {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *BunPostRepository) Update(ctx context.Context, record *blogpost.Post) (*blogpost.Post, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "post", record.Permalink)
	}
	return updated, nil
}

func (r *BunPostRepository) Delete(ctx context.Context, id uuid.UUID, hardDelete bool) error {
	if r.db == nil {
		return fmt.Errorf("post repository: database not configured")
	}

	if hardDelete {
		result, err := r.db.NewDelete().
			Model((*blogpost.Post)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("post delete rows affected: %w", err)
		}
		if affected == 0 {
			return &blogpost.NotFoundError{Resource: "post", Key: id.String()}
		}
		return nil
	}

	result, err := r.db.NewUpdate().
		Model((*blogpost.Post)(nil)).
		Set("deleted_at = ?", time.Now()).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.deleted_at IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("soft delete post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("post soft delete rows affected: %w", err)
	}
	if affected == 0 {
		return &blogpost.NotFoundError{Resource: "post", Key: id.String()}
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &blogpost.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
