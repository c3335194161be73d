package blog

import (
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/di"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/generator"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/lint"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/post"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// PostService exports the post service contract for consumers of the blog package.
type PostService = post.Service

// MarkdownService exports the markdown workflow contract.
type MarkdownService = interfaces.MarkdownService

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// PostRecord exports the post read DTO.
type PostRecord = interfaces.PostRecord

// PostCreateRequest exports the post create request DTO.
type PostCreateRequest = interfaces.PostCreateRequest

// PostUpdateRequest exports the post update request DTO.
type PostUpdateRequest = interfaces.PostUpdateRequest

// FrontMatter exports the parsed front matter DTO.
type FrontMatter = interfaces.FrontMatter

// Document exports the loaded markdown document DTO.
type Document = interfaces.Document

// Module represents the top level blog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a blog module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Posts returns the configured post service.
func (m *Module) Posts() PostService {
	return m.container.PostService()
}

// Markdown returns the markdown service when configured.
func (m *Module) Markdown() MarkdownService {
	return m.container.MarkdownService()
}

// Generator returns the configured generator service.
func (m *Module) Generator() GeneratorService {
	return m.container.GeneratorService()
}

// Linter returns the content linter built from configuration.
func (m *Module) Linter() *lint.Linter {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Linter()
}
