package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if cfg.Content.PostsDir != "_posts" {
		t.Fatalf("unexpected posts dir %q", cfg.Content.PostsDir)
	}
	if cfg.Content.Pattern != "*.markdown" {
		t.Fatalf("unexpected pattern %q", cfg.Content.Pattern)
	}
}

func TestValidateMarkdownRequiresFeature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markdown.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, ErrMarkdownFeatureRequired) {
		t.Fatalf("expected ErrMarkdownFeatureRequired, got %v", err)
	}

	cfg.Features.Markdown = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.Content.PostsDir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateGenerator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorBaseURLRequired) {
		t.Fatalf("expected ErrGeneratorBaseURLRequired, got %v", err)
	}

	cfg.Site.BaseURL = "https://code.bluecomment.com"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.Generator.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorOutputDirRequired) {
		t.Fatalf("expected ErrGeneratorOutputDirRequired, got %v", err)
	}

	cfg.Generator.OutputDir = "_site"
	cfg.Generator.Workers = -1
	if err := cfg.Validate(); !errors.Is(err, ErrWorkersInvalid) {
		t.Fatalf("expected ErrWorkersInvalid, got %v", err)
	}
}

func TestValidateStorageProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Provider = "dynamo"

	if err := cfg.Validate(); !errors.Is(err, ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true

	if err := cfg.Validate(); err != nil {
		t.Fatalf("console provider should validate, got %v", err)
	}

	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "pretty"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}
