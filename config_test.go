package blog_test

import (
	"errors"
	"testing"

	blog "github.com/code-bluecomment/code-bluecomment.github.io"
)

func TestConfigValidateMarkdownRequiresFeature(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Features.Markdown = false

	if err := cfg.Validate(); !errors.Is(err, blog.ErrMarkdownFeatureRequired) {
		t.Fatalf("expected ErrMarkdownFeatureRequired, got %v", err)
	}
}

func TestConfigValidateMarkdownRequiresContentDir(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Content.PostsDir = "  "

	if err := cfg.Validate(); !errors.Is(err, blog.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestConfigValidateGeneratorRequiresOutputDir(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Generator.Enabled = true
	cfg.Generator.OutputDir = ""

	if err := cfg.Validate(); !errors.Is(err, blog.ErrGeneratorOutputDirRequired) {
		t.Fatalf("expected ErrGeneratorOutputDirRequired, got %v", err)
	}
}

func TestConfigValidateGeneratorFeedsRequireBaseURL(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Generator.Enabled = true
	cfg.Site.BaseURL = ""

	if err := cfg.Validate(); !errors.Is(err, blog.ErrGeneratorBaseURLRequired) {
		t.Fatalf("expected ErrGeneratorBaseURLRequired, got %v", err)
	}
}

func TestConfigValidateUnknownStorageProvider(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Storage.Provider = "redis"

	if err := cfg.Validate(); !errors.Is(err, blog.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestConfigValidateLoggingProvider(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, blog.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, blog.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestNewModuleWithDefaults(t *testing.T) {
	cfg := blog.DefaultConfig()
	cfg.Storage.Provider = "memory"

	module, err := blog.New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if module.Posts() == nil {
		t.Fatal("expected post service")
	}
	if module.Generator() == nil {
		t.Fatal("expected generator service")
	}
	if module.Linter() == nil {
		t.Fatal("expected linter")
	}
}
