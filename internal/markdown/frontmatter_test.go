package markdown

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/code-bluecomment/code-bluecomment.github.io/post"
)

func TestParseFrontMatterCorpusEnvelope(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte(decoratorPost))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Layout != "post" {
		t.Fatalf("expected layout post, got %q", fm.Layout)
	}
	if fm.Title != "Decorator Design Pattern" {
		t.Fatalf("unexpected title %q", fm.Title)
	}
	want := time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC)
	if !fm.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, fm.Date)
	}
	if fm.Permalink != "/decorator-design-pattern/" {
		t.Fatalf("unexpected permalink %q", fm.Permalink)
	}
	if len(fm.Categories) != 1 || fm.Categories[0] != "design patterns" {
		t.Fatalf("unexpected categories %#v", fm.Categories)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "c#" {
		t.Fatalf("unexpected tags %#v", fm.Tags)
	}
	if !strings.Contains(string(body), "Decorator") {
		t.Fatalf("body missing content: %q", body)
	}
	if fm.Raw["permalink"] != "/decorator-design-pattern/" {
		t.Fatalf("raw map missing permalink: %#v", fm.Raw)
	}
}

func TestFrontMatterDefaultsWhenKeysAbsent(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte(commandPost))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if !fm.IsPublished() {
		t.Fatalf("absent published should default to published")
	}
	if !fm.CommentsEnabled() {
		t.Fatalf("absent comments should default to enabled")
	}
}

func TestFrontMatterExplicitUnpublished(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte(draftPost))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.IsPublished() {
		t.Fatalf("published: false should hide the post")
	}
}

func TestStringListAcceptsScalarForm(t *testing.T) {
	source := "---\ntitle: CSharp Delegates\ncategories: c# language-features\n---\nBody\n"
	fm, _, err := ParseFrontMatter([]byte(source))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(fm.Categories) != 2 || fm.Categories[0] != "c#" || fm.Categories[1] != "language-features" {
		t.Fatalf("unexpected categories %#v", fm.Categories)
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2016-03-14 09:30:00 +0000": time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC),
		"2016-03-14 09:30":          time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC),
		"2016-03-14T09:30:00Z":      time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC),
		"2016-03-14":                time.Date(2016, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", input, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("next tuesday"); !errors.Is(err, post.ErrDateInvalid) {
		t.Fatalf("expected ErrDateInvalid, got %v", err)
	}
}

func TestFrontMatterDedupsCategoriesAndTags(t *testing.T) {
	source := "---\ntitle: Repeated Terms\ncategories: [patterns, patterns, c#]\ntags: [go, go]\n---\nBody\n"
	fm, _, err := ParseFrontMatter([]byte(source))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(fm.Categories) != 2 || fm.Categories[0] != "patterns" || fm.Categories[1] != "c#" {
		t.Fatalf("expected ordered category set, got %#v", fm.Categories)
	}
	if len(fm.Tags) != 1 || fm.Tags[0] != "go" {
		t.Fatalf("expected deduped tags, got %#v", fm.Tags)
	}
}

func TestFrontMatterRejectsNonStringCategories(t *testing.T) {
	source := "---\ntitle: Broken Terms\ncategories: [patterns, 42]\n---\nBody\n"
	if _, _, err := ParseFrontMatter([]byte(source)); !errors.Is(err, post.ErrCategoriesMalformed) {
		t.Fatalf("expected ErrCategoriesMalformed, got %v", err)
	}
}

func TestBuildDocumentFilenameFallbacks(t *testing.T) {
	source := "---\nlayout: post\ntitle: Builder Design Pattern\n---\nBody\n"
	doc, err := BuildDocument("2016-05-09-builder-design-pattern.markdown", []byte(source), time.Now())
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.FileSlug != "builder-design-pattern" {
		t.Fatalf("unexpected file slug %q", doc.FileSlug)
	}
	wantDate := time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC)
	if !doc.FileDate.Equal(wantDate) {
		t.Fatalf("unexpected file date %v", doc.FileDate)
	}
	if !doc.FrontMatter.Date.Equal(wantDate) {
		t.Fatalf("front matter date should fall back to filename date, got %v", doc.FrontMatter.Date)
	}
}
