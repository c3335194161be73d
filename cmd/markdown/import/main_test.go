package main

import (
	"context"
	"testing"

	"github.com/code-bluecomment/code-bluecomment.github.io/cmd/markdown/internal/bootstrap"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

type stubMarkdownService struct {
	importCalls int
	importDir   string
	importOpts  interfaces.ImportOptions
}

func (s *stubMarkdownService) Load(context.Context, string, interfaces.LoadOptions) (*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMarkdownService) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMarkdownService) Render(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMarkdownService) RenderDocument(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMarkdownService) Import(context.Context, *interfaces.Document, interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	return nil, nil
}

func (s *stubMarkdownService) ImportDirectory(_ context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	s.importCalls++
	s.importDir = dir
	s.importOpts = opts
	return &interfaces.ImportResult{}, nil
}

func (s *stubMarkdownService) Sync(context.Context, string, interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	return nil, nil
}

func TestRunImportUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubMarkdownService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runImport([]string{
		"-directory", "docs",
		"-author", "blue",
		"-dry-run",
	}); err != nil {
		t.Fatalf("runImport returned error: %v", err)
	}
	if svc.importCalls != 1 {
		t.Fatalf("expected import to be called once, got %d", svc.importCalls)
	}
	if svc.importDir != "docs" {
		t.Fatalf("expected import directory docs, got %s", svc.importDir)
	}
	if svc.importOpts.AuthorID != "blue" {
		t.Fatalf("expected author blue, got %s", svc.importOpts.AuthorID)
	}
	if !svc.importOpts.DryRun {
		t.Fatal("expected dry run to propagate")
	}
}
