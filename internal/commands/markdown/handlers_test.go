package markdowncmd

import (
	"context"
	"errors"
	"testing"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

type stubMarkdownService struct {
	interfaces.MarkdownService

	importDir     string
	importOpts    interfaces.ImportOptions
	importResult  *interfaces.ImportResult
	importErr     error
	importCalls   int
	syncDir       string
	syncOpts      interfaces.SyncOptions
	syncResult    *interfaces.SyncResult
	syncErr       error
	syncCallCount int
}

func (s *stubMarkdownService) ImportDirectory(_ context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	s.importCalls++
	s.importDir = dir
	s.importOpts = opts
	if s.importErr != nil {
		return nil, s.importErr
	}
	if s.importResult != nil {
		return s.importResult, nil
	}
	return &interfaces.ImportResult{}, nil
}

func (s *stubMarkdownService) Sync(_ context.Context, dir string, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	s.syncCallCount++
	s.syncDir = dir
	s.syncOpts = opts
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	if s.syncResult != nil {
		return s.syncResult, nil
	}
	return &interfaces.SyncResult{}, nil
}

func TestImportPostsHandlerDelegatesToService(t *testing.T) {
	service := &stubMarkdownService{
		importResult: &interfaces.ImportResult{
			CreatedPermalinks: []string{"/decorator-design-pattern/"},
		},
	}
	handler := NewImportPostsHandler(service, nil, FeatureGates{})

	msg := ImportPostsCommand{
		Directory:     "_posts",
		AuthorID:      "editor",
		DefaultLayout: "post",
		DryRun:        true,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if service.importCalls != 1 {
		t.Fatalf("expected a single ImportDirectory call, got %d", service.importCalls)
	}
	if service.importDir != "_posts" {
		t.Fatalf("expected directory _posts, got %q", service.importDir)
	}
	if service.importOpts.AuthorID != "editor" {
		t.Fatalf("expected author editor, got %q", service.importOpts.AuthorID)
	}
	if service.importOpts.DefaultLayout != "post" {
		t.Fatalf("expected default layout post, got %q", service.importOpts.DefaultLayout)
	}
	if !service.importOpts.DryRun {
		t.Fatal("expected dry run to propagate")
	}
}

func TestImportPostsHandlerValidatesDirectory(t *testing.T) {
	service := &stubMarkdownService{}
	handler := NewImportPostsHandler(service, nil, FeatureGates{})

	err := handler.Execute(context.Background(), ImportPostsCommand{Directory: "   "})
	if err == nil {
		t.Fatal("expected validation error for blank directory")
	}
	if service.importCalls != 0 {
		t.Fatalf("expected no service call, got %d", service.importCalls)
	}
}

func TestImportPostsHandlerHonoursFeatureGate(t *testing.T) {
	service := &stubMarkdownService{}
	gates := FeatureGates{MarkdownEnabled: func() bool { return false }}
	handler := NewImportPostsHandler(service, nil, gates)

	err := handler.Execute(context.Background(), ImportPostsCommand{Directory: "_posts"})
	if !errors.Is(err, ErrMarkdownFeatureDisabled) {
		t.Fatalf("expected ErrMarkdownFeatureDisabled, got %v", err)
	}
	if service.importCalls != 0 {
		t.Fatalf("expected no service call when feature disabled, got %d", service.importCalls)
	}
}

func TestImportPostsHandlerPropagatesServiceError(t *testing.T) {
	serviceErr := errors.New("walk failed")
	service := &stubMarkdownService{importErr: serviceErr}
	handler := NewImportPostsHandler(service, nil, FeatureGates{})

	err := handler.Execute(context.Background(), ImportPostsCommand{Directory: "_posts"})
	if !errors.Is(err, serviceErr) {
		t.Fatalf("expected wrapped service error, got %v", err)
	}
}

func TestSyncPostsHandlerDelegatesToService(t *testing.T) {
	service := &stubMarkdownService{
		syncResult: &interfaces.SyncResult{Created: 1, Updated: 2, Deleted: 1, Skipped: 3},
	}
	handler := NewSyncPostsHandler(service, nil, FeatureGates{})

	msg := SyncPostsCommand{
		Directory:      "_posts",
		AuthorID:       "editor",
		DeleteOrphaned: true,
		UpdateExisting: true,
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if service.syncCallCount != 1 {
		t.Fatalf("expected a single Sync call, got %d", service.syncCallCount)
	}
	if service.syncDir != "_posts" {
		t.Fatalf("expected directory _posts, got %q", service.syncDir)
	}
	if !service.syncOpts.DeleteOrphaned {
		t.Fatal("expected DeleteOrphaned to propagate")
	}
	if !service.syncOpts.UpdateExisting {
		t.Fatal("expected UpdateExisting to propagate")
	}
	if service.syncOpts.AuthorID != "editor" {
		t.Fatalf("expected author editor, got %q", service.syncOpts.AuthorID)
	}
}

func TestSyncPostsHandlerHonoursFeatureGate(t *testing.T) {
	service := &stubMarkdownService{}
	gates := FeatureGates{MarkdownEnabled: func() bool { return false }}
	handler := NewSyncPostsHandler(service, nil, gates)

	err := handler.Execute(context.Background(), SyncPostsCommand{Directory: "_posts"})
	if !errors.Is(err, ErrMarkdownFeatureDisabled) {
		t.Fatalf("expected ErrMarkdownFeatureDisabled, got %v", err)
	}
	if service.syncCallCount != 0 {
		t.Fatalf("expected no service call when feature disabled, got %d", service.syncCallCount)
	}
}

func TestSyncPostsHandlerCancelledContext(t *testing.T) {
	service := &stubMarkdownService{}
	handler := NewSyncPostsHandler(service, nil, FeatureGates{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, SyncPostsCommand{Directory: "_posts"})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if service.syncCallCount != 0 {
		t.Fatalf("expected no service call for cancelled context, got %d", service.syncCallCount)
	}
}
