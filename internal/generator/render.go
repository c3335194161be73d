package generator

import (
	"strings"
	"time"

	gotheme "github.com/goliatone/go-theme"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// TemplateContext captures the data contract passed to TemplateRenderer
// implementations. Exactly one of Post or Archive is set per render.
type TemplateContext struct {
	Site    SiteMetadata
	Post    *PostRenderingContext
	Archive *ArchiveData
	Build   BuildMetadata
	Theme   ThemeContext
	Helpers TemplateHelpers
}

// SiteMetadata exposes site-wide information required by templates.
type SiteMetadata struct {
	BaseURL         string
	Title           string
	Description     string
	Author          string
	DisqusShortname string
	Metadata        map[string]any
}

// BuildMetadata surfaces high level build information to templates.
type BuildMetadata struct {
	GeneratedAt time.Time
	Options     BuildOptions
}

// PostRenderingContext contains the resolved data for a single post render.
type PostRenderingContext struct {
	Record   *interfaces.PostRecord
	Route    string
	Metadata DependencyMetadata
}

// ThemeContext surfaces go-theme selection data to templates.
type ThemeContext struct {
	Name      string
	Variant   string
	Tokens    map[string]string
	CSSVars   map[string]string
	Partials  map[string]string
	AssetURL  func(string) string
	Template  func(string, string) string
	Selection *gotheme.Selection
}

// TemplateHelpers exposes convenience helpers for template authors.
type TemplateHelpers struct {
	baseURL string
}

func newTemplateHelpers(baseURL string) TemplateHelpers {
	return TemplateHelpers{baseURL: strings.TrimRight(baseURL, "/")}
}

// BaseURL returns the configured site base URL.
func (h TemplateHelpers) BaseURL() string {
	return h.baseURL
}

// WithBaseURL prefixes the provided path with the configured base URL.
func (h TemplateHelpers) WithBaseURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return h.baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if h.baseURL == "" {
		return path
	}
	return h.baseURL + path
}

// DateISO formats a timestamp for datetime attributes.
func (h TemplateHelpers) DateISO(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}

// DateDisplay formats a timestamp the way post bylines show it.
func (h TemplateHelpers) DateDisplay(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format("Jan 2, 2006")
}

func buildThemeContext(selection *gotheme.Selection, cfg ThemingConfig) ThemeContext {
	empty := ThemeContext{
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: map[string]string{},
		AssetURL: func(string) string { return "" },
		Template: func(_ string, fallback string) string { return fallback },
	}
	if selection == nil {
		return empty
	}

	return ThemeContext{
		Name:      selection.Theme,
		Variant:   selection.Variant,
		Tokens:    selection.Tokens(),
		CSSVars:   selection.CSSVariables(cfg.CSSVariablePrefix),
		Partials:  selection.Partials(cfg.PartialFallbacks),
		AssetURL:  func(key string) string { url, _ := selection.Asset(key); return url },
		Template:  selection.Template,
		Selection: selection,
	}
}

// resolveLayoutTemplate maps a post layout to a theme template identifier.
// Unknown layouts fall back to the conventional layouts/<name>.html path so
// filesystem renderers still resolve them.
func resolveLayoutTemplate(selection *gotheme.Selection, layout string) string {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		layout = "post"
	}
	fallback := "layouts/" + layout + ".html"
	if selection == nil {
		return fallback
	}
	return selection.Template(layout, fallback)
}

type artifactKind string

const (
	artifactPost    artifactKind = "post"
	artifactArchive artifactKind = "archive"
)

// RenderedArtifact captures the rendered HTML output for a post or archive page.
type RenderedArtifact struct {
	Kind      artifactKind
	Permalink string
	Route     string
	Output    string
	Template  string
	HTML      string
	Metadata  DependencyMetadata
	Duration  time.Duration
	Checksum  string
}

// RenderDiagnostic records rendering timing and errors for individual pages.
type RenderDiagnostic struct {
	Permalink string
	Route     string
	Template  string
	Duration  time.Duration
	Skipped   bool
	Err       error
}

type renderOutcome struct {
	artifact   RenderedArtifact
	diagnostic RenderDiagnostic
	err        error
	skipped    bool
}
