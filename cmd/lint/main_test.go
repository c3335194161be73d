package main

import (
	"os"
	"path/filepath"
	"testing"
)

const cleanPost = `---
layout: post
title: "Facade Design Pattern"
comments: true
permalink: /facade-design-pattern/
categories:
- patterns
---
A facade offers a simplified interface over a subsystem.
`

const untitledPost = `---
layout: post
permalink: /untitled/
---
Body without a title.
`

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write post %s: %v", name, err)
	}
}

func TestRunLintCleanCorpus(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "2016-03-14-facade-design-pattern.markdown", cleanPost)

	originalExit := exitFunc
	defer func() { exitFunc = originalExit }()
	exitCode := -1
	exitFunc = func(code int) { exitCode = code }

	if err := runLint([]string{"-directory", dir}); err != nil {
		t.Fatalf("runLint returned error: %v", err)
	}
	if exitCode != -1 {
		t.Fatalf("expected no exit for clean corpus, got code %d", exitCode)
	}
}

func TestRunLintReportsErrors(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "2016-03-15-untitled.markdown", untitledPost)

	originalExit := exitFunc
	defer func() { exitFunc = originalExit }()
	exitCode := -1
	exitFunc = func(code int) { exitCode = code }

	if err := runLint([]string{"-directory", dir}); err != nil {
		t.Fatalf("runLint returned error: %v", err)
	}
	if exitCode != 1 {
		t.Fatalf("expected exit code 1 for corpus errors, got %d", exitCode)
	}
}
