package staticcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/generator"
)

type stubGenerator struct {
	buildOpts  generator.BuildOptions
	buildCalls int
	cleanCalls int
	buildErr   error
	cleanErr   error
}

func (s *stubGenerator) Build(_ context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	s.buildCalls++
	s.buildOpts = opts
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	return &generator.BuildResult{PostsBuilt: 2}, nil
}

func (s *stubGenerator) Clean(context.Context) error {
	s.cleanCalls++
	return s.cleanErr
}

func TestBuildSiteHandlerDelegates(t *testing.T) {
	service := &stubGenerator{}
	handler := NewBuildSiteHandler(service, nil, FeatureGates{})

	msg := BuildSiteCommand{Permalinks: []string{"/decorator-design-pattern/"}, DryRun: true}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.buildCalls != 1 {
		t.Fatalf("expected single build call, got %d", service.buildCalls)
	}
	if !service.buildOpts.DryRun {
		t.Fatal("expected dry run to propagate")
	}
	if len(service.buildOpts.Permalinks) != 1 {
		t.Fatalf("expected permalink filter, got %v", service.buildOpts.Permalinks)
	}
}

func TestBuildSiteHandlerCleanBeforeBuild(t *testing.T) {
	service := &stubGenerator{}
	handler := NewBuildSiteHandler(service, nil, FeatureGates{})

	if err := handler.Execute(context.Background(), BuildSiteCommand{Clean: true}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.cleanCalls != 1 {
		t.Fatalf("expected clean call, got %d", service.cleanCalls)
	}
}

func TestBuildSiteHandlerDryRunSkipsClean(t *testing.T) {
	service := &stubGenerator{}
	handler := NewBuildSiteHandler(service, nil, FeatureGates{})

	if err := handler.Execute(context.Background(), BuildSiteCommand{Clean: true, DryRun: true}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.cleanCalls != 0 {
		t.Fatal("dry run must not clean the output directory")
	}
}

func TestBuildSiteHandlerHonoursFeatureGate(t *testing.T) {
	service := &stubGenerator{}
	gates := FeatureGates{GeneratorEnabled: func() bool { return false }}
	handler := NewBuildSiteHandler(service, nil, gates)

	err := handler.Execute(context.Background(), BuildSiteCommand{})
	if !errors.Is(err, ErrGeneratorFeatureDisabled) {
		t.Fatalf("expected ErrGeneratorFeatureDisabled, got %v", err)
	}
	if service.buildCalls != 0 {
		t.Fatal("expected no build call when feature disabled")
	}
}

func TestBuildSiteHandlerPropagatesBuildError(t *testing.T) {
	buildErr := errors.New("render failed")
	service := &stubGenerator{buildErr: buildErr}
	handler := NewBuildSiteHandler(service, nil, FeatureGates{})

	err := handler.Execute(context.Background(), BuildSiteCommand{})
	if !errors.Is(err, buildErr) {
		t.Fatalf("expected wrapped build error, got %v", err)
	}
}
