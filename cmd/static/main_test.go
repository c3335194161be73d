package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePost = `---
layout: post
title: "Decorator Design Pattern"
comments: true
permalink: /decorator-design-pattern/
categories:
- patterns
---
The decorator pattern wraps behaviour around an existing object.
`

const postLayout = `<html><head><title>{{.Post.Record.Title}} - {{.Site.Title}}</title></head>` +
	`<body><article>{{safeHTML .Post.Record.BodyHTML}}</article></body></html>`

const archiveLayout = `<html><body><h1>{{.Archive.Term}}</h1><ul>` +
	`{{range .Archive.Posts}}<li>{{.Record.Title}}</li>{{end}}</ul></body></html>`

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRunBuildRendersSite(t *testing.T) {
	t.Chdir(t.TempDir())

	writeFixture(t, "_posts/2016-03-14-decorator-design-pattern.markdown", samplePost)
	writeFixture(t, "themes/layouts/post.html", postLayout)
	writeFixture(t, "themes/layouts/archive.html", archiveLayout)

	if err := runBuild([]string{
		"-base-url", "https://code-bluecomment.github.io",
	}); err != nil {
		t.Fatalf("runBuild returned error: %v", err)
	}

	rendered, err := os.ReadFile(filepath.Join("_site", "decorator-design-pattern", "index.html"))
	if err != nil {
		t.Fatalf("read rendered post: %v", err)
	}
	if !strings.Contains(string(rendered), "Decorator Design Pattern") {
		t.Fatalf("expected post title in output, got %q", rendered)
	}
	if !strings.Contains(string(rendered), "decorator pattern wraps behaviour") {
		t.Fatalf("expected rendered body in output, got %q", rendered)
	}

	archive, err := os.ReadFile(filepath.Join("_site", "categories", "patterns", "index.html"))
	if err != nil {
		t.Fatalf("read archive page: %v", err)
	}
	if !strings.Contains(string(archive), "patterns") {
		t.Fatalf("expected category term in archive, got %q", archive)
	}

	for _, name := range []string{"sitemap.xml", "robots.txt", "feed.xml", "feed.atom.xml"} {
		if _, err := os.Stat(filepath.Join("_site", name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
}

func TestRunBuildDryRunWritesNothing(t *testing.T) {
	t.Chdir(t.TempDir())

	writeFixture(t, "_posts/2016-03-14-decorator-design-pattern.markdown", samplePost)
	writeFixture(t, "themes/layouts/post.html", postLayout)
	writeFixture(t, "themes/layouts/archive.html", archiveLayout)

	if err := runBuild([]string{
		"-base-url", "https://code-bluecomment.github.io",
		"-dry-run",
	}); err != nil {
		t.Fatalf("runBuild returned error: %v", err)
	}

	if _, err := os.Stat("_site"); !os.IsNotExist(err) {
		entries, _ := os.ReadDir("_site")
		if len(entries) > 0 {
			t.Fatalf("expected no artifacts in dry run, found %d entries", len(entries))
		}
	}
}
