package post

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Post is the canonical record for a blog entry. One row per Markdown source
// file; the permalink is the natural identifier across the corpus.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID          uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Layout      string         `bun:"layout,notnull,default:'post'" json:"layout"`
	Title       string         `bun:"title,notnull" json:"title"`
	Date        time.Time      `bun:"date,notnull" json:"date"`
	Comments    bool           `bun:"comments,notnull,default:true" json:"comments"`
	Published   bool           `bun:"published,notnull,default:true" json:"published"`
	Categories  []string       `bun:"categories,type:jsonb" json:"categories,omitempty"`
	Tags        []string       `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Permalink   string         `bun:"permalink,notnull,unique" json:"permalink"`
	Body        string         `bun:"body,notnull" json:"body"`
	BodyHTML    string         `bun:"body_html" json:"body_html,omitempty"`
	SourcePath  string         `bun:"source_path" json:"source_path,omitempty"`
	Checksum    string         `bun:"checksum" json:"checksum,omitempty"`
	Metadata    map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	PublishedAt *time.Time     `bun:"published_at,nullzero" json:"published_at,omitempty"`
	DeletedAt   *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt   time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// IsVisible reports whether the post should appear in rendered output.
func (p *Post) IsVisible() bool {
	if p == nil {
		return false
	}
	return p.Published && p.DeletedAt == nil
}

// FrontMatterSchema captures the JSON schema used to validate post front
// matter payloads before they are persisted. The key set mirrors the corpus
// convention; unknown keys are allowed and preserved verbatim.
var FrontMatterSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"layout":    map[string]any{"type": "string"},
		"title":     map[string]any{"type": "string", "minLength": 1},
		"date":      map[string]any{"type": "string"},
		"comments":  map[string]any{"type": "boolean"},
		"published": map[string]any{"type": "boolean"},
		"categories": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"permalink": map[string]any{"type": "string"},
	},
	"required":             []string{"title"},
	"additionalProperties": true,
}
