package post

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// NewPostRepository wires the bun model handlers for the posts table. The
// permalink is the natural identifier so lookups converge with the corpus.
func NewPostRepository(db *bun.DB) repository.Repository[*blogpost.Post] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*blogpost.Post]{
		NewRecord: func() *blogpost.Post { return &blogpost.Post{} },
		GetID: func(p *blogpost.Post) uuid.UUID {
			return p.ID
		},
		SetID: func(p *blogpost.Post, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "permalink"
		},
		GetIdentifierValue: func(p *blogpost.Post) string {
			if p == nil {
				return ""
			}
			return p.Permalink
		},
	})
}
