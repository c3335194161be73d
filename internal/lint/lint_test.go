package lint

import (
	"context"
	"testing"
	"testing/fstest"
)

func corpusFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

const cleanPost = `---
layout: post
title: Facade Design Pattern
date: 2016-06-01 08:00:00 +0000
categories: [design patterns]
tags: [c#, facade]
permalink: /facade-design-pattern/
---
Provide a unified interface to a set of interfaces in a subsystem.
`

func TestLintCleanCorpus(t *testing.T) {
	linter := New(Config{KnownLayouts: []string{"post"}})

	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-06-01-facade-design-pattern.markdown": cleanPost,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}

	if report.Checked != 1 {
		t.Fatalf("expected 1 file checked, got %d", report.Checked)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected clean report, got %#v", report.Issues)
	}
}

func TestLintFlagsFilenameConvention(t *testing.T) {
	linter := New(Config{})

	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"facade-design-pattern.markdown": cleanPost,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}

	if !hasRule(report, RuleFilenameConvention) {
		t.Fatalf("expected filename finding, got %#v", report.Issues)
	}
	if !report.HasErrors() {
		t.Fatalf("filename violations are errors")
	}
}

func TestLintFlagsMissingTitle(t *testing.T) {
	linter := New(Config{})

	source := "---\nlayout: post\ndate: 2016-06-01 08:00:00 +0000\n---\nBody\n"
	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-06-01-untitled.markdown": source,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}
	if !hasRule(report, RuleTitleRequired) {
		t.Fatalf("expected title finding, got %#v", report.Issues)
	}
}

func TestLintFlagsUnparseableDate(t *testing.T) {
	linter := New(Config{})

	source := "---\ntitle: Broken Date\ndate: sometime in march\n---\nBody\n"
	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-06-01-broken-date.markdown": source,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}
	if !hasRule(report, RuleFrontMatterParse) {
		t.Fatalf("expected front matter finding, got %#v", report.Issues)
	}
}

func TestLintFlagsDateMismatch(t *testing.T) {
	linter := New(Config{})

	source := "---\ntitle: Facade\ndate: 2016-06-02 08:00:00 +0000\npermalink: /facade/\n---\nBody\n"
	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-06-01-facade.markdown": source,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}

	issue, ok := findRule(report, RuleDateMatchesFile)
	if !ok {
		t.Fatalf("expected date mismatch finding, got %#v", report.Issues)
	}
	if issue.Severity != SeverityWarning {
		t.Fatalf("mismatch should default to warning, got %s", issue.Severity)
	}

	strict := New(Config{DateMismatchIsError: true})
	report, err = strict.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-06-01-facade.markdown": source,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS strict: %v", err)
	}
	if issue, _ := findRule(report, RuleDateMatchesFile); issue.Severity != SeverityError {
		t.Fatalf("expected error severity, got %s", issue.Severity)
	}
}

func TestLintFlagsDuplicatePermalinks(t *testing.T) {
	linter := New(Config{})

	other := "---\ntitle: Facade Again\ndate: 2016-06-03 08:00:00 +0000\npermalink: /facade-design-pattern/\n---\nBody\n"
	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-06-01-facade-design-pattern.markdown": cleanPost,
		"2016-06-03-facade-again.markdown":          other,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}

	issue, ok := findRule(report, RulePermalinkUnique)
	if !ok {
		t.Fatalf("expected duplicate permalink finding, got %#v", report.Issues)
	}
	if issue.Path != "2016-06-03-facade-again.markdown" {
		t.Fatalf("duplicate should be reported on the later file, got %s", issue.Path)
	}
}

func TestLintWarnsMissingPermalink(t *testing.T) {
	linter := New(Config{})

	source := "---\ntitle: Strategy Pattern\ndate: 2016-07-01 08:00:00 +0000\n---\nBody\n"
	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-07-01-strategy-pattern.markdown": source,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}

	issue, ok := findRule(report, RulePermalinkRequired)
	if !ok {
		t.Fatalf("expected missing permalink finding, got %#v", report.Issues)
	}
	if issue.Severity != SeverityWarning {
		t.Fatalf("missing permalink should be a warning, got %s", issue.Severity)
	}
	if report.HasErrors() {
		t.Fatalf("the date route fallback must not fail the run, got %#v", report.Issues)
	}
}

func TestLintDerivedPermalinksCollide(t *testing.T) {
	linter := New(Config{Recursive: true})

	// Same filename in two directories derives the same date route.
	source := "---\ntitle: Strategy Pattern\n---\nBody\n"
	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"a/2016-07-01-strategy-pattern.markdown": source,
		"b/2016-07-01-strategy-pattern.markdown": source,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}
	if !hasRule(report, RulePermalinkUnique) {
		t.Fatalf("expected derived permalink collision, got %#v", report.Issues)
	}
}

func TestLintFlagsUnknownLayout(t *testing.T) {
	linter := New(Config{KnownLayouts: []string{"post", "page"}})

	source := "---\nlayout: gallery\ntitle: Photos\ndate: 2016-06-01\npermalink: /photos/\n---\nBody\n"
	report, err := linter.LintFS(context.Background(), corpusFS(map[string]string{
		"2016-06-01-photos.markdown": source,
	}), ".")
	if err != nil {
		t.Fatalf("LintFS: %v", err)
	}

	issue, ok := findRule(report, RuleLayoutKnown)
	if !ok {
		t.Fatalf("expected layout finding, got %#v", report.Issues)
	}
	if issue.Severity != SeverityWarning {
		t.Fatalf("unknown layout should be a warning")
	}
	if report.HasErrors() {
		t.Fatalf("warnings alone must not fail the run")
	}
}

func hasRule(report *Report, rule string) bool {
	_, ok := findRule(report, rule)
	return ok
}

func findRule(report *Report, rule string) (Issue, bool) {
	for _, issue := range report.Issues {
		if issue.Rule == rule {
			return issue, true
		}
	}
	return Issue{}, false
}
