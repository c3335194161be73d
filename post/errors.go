package post

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired       = errors.New("post: title is required")
	ErrPermalinkRequired   = errors.New("post: permalink is required")
	ErrPermalinkInvalid    = errors.New("post: permalink contains invalid characters")
	ErrPermalinkExists     = errors.New("post: permalink already exists")
	ErrDateRequired        = errors.New("post: date is required")
	ErrDateInvalid         = errors.New("post: date is invalid")
	ErrBodyRequired        = errors.New("post: body is required")
	ErrIDRequired          = errors.New("post: id required")
	ErrNotFound            = errors.New("post: not found")
	ErrFrontMatterInvalid  = errors.New("post: front matter validation failed")
	ErrSoftDeleteConflict  = errors.New("post: record already deleted")
	ErrMetadataInvalid     = errors.New("post: metadata invalid")
	ErrRepositoryRequired  = errors.New("post: repository is required")
	ErrAlreadyPublished    = errors.New("post: already published")
	ErrAlreadyUnpublished  = errors.New("post: already unpublished")
	ErrFilenameInvalid     = errors.New("post: filename does not match YYYY-MM-DD-slug convention")
	ErrLayoutUnknown       = errors.New("post: layout is not registered")
	ErrCategoriesMalformed = errors.New("post: categories must be strings")
)

// NotFoundError captures missing record lookups with the key that failed.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return ErrNotFound.Error()
	}
	resource := strings.TrimSpace(e.Resource)
	if resource == "" {
		resource = "post"
	}
	return fmt.Sprintf("%s: %s not found", resource, key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// PermalinkConflictError captures uniqueness violations across the corpus.
// When two source files resolve to the same permalink OtherPath names the
// file that claimed it first.
type PermalinkConflictError struct {
	Permalink  string
	ExistingID uuid.UUID
	SourcePath string
	OtherPath  string
}

func (e *PermalinkConflictError) Error() string {
	if e == nil {
		return ErrPermalinkExists.Error()
	}
	permalink := strings.TrimSpace(e.Permalink)
	if permalink == "" {
		return ErrPermalinkExists.Error()
	}
	if source := strings.TrimSpace(e.SourcePath); source != "" {
		if other := strings.TrimSpace(e.OtherPath); other != "" {
			return fmt.Sprintf("%s: permalink=%s source=%s conflicts-with=%s", ErrPermalinkExists.Error(), permalink, source, other)
		}
		return fmt.Sprintf("%s: permalink=%s source=%s", ErrPermalinkExists.Error(), permalink, source)
	}
	return fmt.Sprintf("%s: permalink=%s", ErrPermalinkExists.Error(), permalink)
}

func (e *PermalinkConflictError) Unwrap() error {
	return ErrPermalinkExists
}
