package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	"github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// dateLayouts enumerates the timestamp shapes found across the corpus, most
// specific first. The bare date form resolves to midnight UTC.
var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front matter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	fm, err := envelopeToFrontMatter(meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, err
	}
	return fm, body, nil
}

// ParseDate interprets a front matter date string using the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("markdown: %w: %q", post.ErrDateInvalid, value)
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. The document picks up the slug and date
// encoded in the filename; a missing front matter date falls back to the
// filename date. BodyHTML is intentionally left empty so callers can render
// lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	doc := &interfaces.Document{
		FilePath:     path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}

	if name, err := ParseFilename(path); err == nil {
		doc.FileSlug = name.Slug
		doc.FileDate = name.Date
		if doc.FrontMatter.Date.IsZero() {
			doc.FrontMatter.Date = name.Date
		}
	}

	return doc, nil
}

type frontMatterEnvelope struct {
	Layout     string         `yaml:"layout"`
	Title      string         `yaml:"title"`
	Date       string         `yaml:"date"`
	Comments   *bool          `yaml:"comments"`
	Published  *bool          `yaml:"published"`
	Categories stringList     `yaml:"categories"`
	Tags       stringList     `yaml:"tags"`
	Permalink  string         `yaml:"permalink"`
	Custom     map[string]any `yaml:",inline"`
}

// stringList accepts both YAML sequences and Jekyll's space separated scalar
// form for categories and tags.
type stringList []string

func (l *stringList) UnmarshalYAML(unmarshal func(any) error) error {
	var many []string
	if err := unmarshal(&many); err == nil {
		*l = many
		return nil
	}

	var one string
	if err := unmarshal(&one); err != nil {
		return fmt.Errorf("%w: %v", post.ErrCategoriesMalformed, err)
	}
	*l = strings.Fields(one)
	return nil
}

func envelopeToFrontMatter(env frontMatterEnvelope) (interfaces.FrontMatter, error) {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}
	env.Categories = dedupList(env.Categories)
	env.Tags = dedupList(env.Tags)

	date, err := ParseDate(env.Date)
	if err != nil {
		return interfaces.FrontMatter{}, err
	}

	raw := make(map[string]any, len(env.Custom)+8)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Layout != "" {
		raw["layout"] = env.Layout
	}
	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Date != "" {
		raw["date"] = env.Date
	}
	if env.Comments != nil {
		raw["comments"] = *env.Comments
	}
	if env.Published != nil {
		raw["published"] = *env.Published
	}
	if len(env.Categories) > 0 {
		raw["categories"] = append([]string(nil), env.Categories...)
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Permalink != "" {
		raw["permalink"] = env.Permalink
	}

	return interfaces.FrontMatter{
		Layout:     env.Layout,
		Title:      env.Title,
		Date:       date,
		Comments:   env.Comments,
		Published:  env.Published,
		Categories: append([]string(nil), env.Categories...),
		Tags:       append([]string(nil), env.Tags...),
		Permalink:  strings.TrimSpace(env.Permalink),
		Custom:     cloneMap(env.Custom),
		Raw:        raw,
	}, nil
}

// dedupList trims entries and drops repeats while preserving first-seen order,
// so categories and tags behave as ordered sets.
func dedupList(values stringList) stringList {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
