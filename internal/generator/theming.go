package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ThemingConfig controls which theme manifest backs the build and how theme
// data is exposed to templates.
type ThemingConfig struct {
	BasePath          string
	DefaultTheme      string
	DefaultVariant    string
	CSSVariablePrefix string
	PartialFallbacks  map[string]string
}

type themeManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsThemeManifestLoader struct{}

func (fsThemeManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}

	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

// themeSelector resolves the active theme selection once and reuses it across
// the build. A missing base path yields a nil selection, which renderers treat
// as the plain layouts/<name>.html convention.
type themeSelector struct {
	registry       *gotheme.MemoryRegistry
	loader         themeManifestLoader
	basePath       string
	defaultTheme   string
	defaultVariant string

	mu        sync.Mutex
	loaded    bool
	selection *gotheme.Selection
	loadErr   error
}

func newThemeSelector(cfg ThemingConfig, loader themeManifestLoader) *themeSelector {
	if loader == nil {
		loader = fsThemeManifestLoader{}
	}
	return &themeSelector{
		registry:       gotheme.NewRegistry(),
		loader:         loader,
		basePath:       strings.TrimSpace(cfg.BasePath),
		defaultTheme:   strings.TrimSpace(cfg.DefaultTheme),
		defaultVariant: strings.TrimSpace(cfg.DefaultVariant),
	}
}

func (s *themeSelector) Selection() (*gotheme.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.selection, s.loadErr
	}
	s.loaded = true

	if s.basePath == "" {
		return nil, nil
	}

	manifest, err := s.loader.Load(s.basePath)
	if err != nil {
		s.loadErr = fmt.Errorf("load theme manifest from %s: %w", s.basePath, err)
		return nil, s.loadErr
	}

	normalized := *manifest
	if strings.TrimSpace(normalized.Name) == "" {
		normalized.Name = s.defaultTheme
	}
	if normalized.Name == "" {
		s.loadErr = fmt.Errorf("theme name required for manifest registration")
		return nil, s.loadErr
	}

	if err := s.registry.Register(&normalized); err != nil {
		s.loadErr = fmt.Errorf("register theme manifest: %w", err)
		return nil, s.loadErr
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}
	themeName := s.defaultTheme
	if themeName == "" {
		themeName = normalized.Name
	}
	selection, err := selector.Select(themeName, s.defaultVariant)
	if err != nil {
		s.loadErr = fmt.Errorf("select theme %s: %w", themeName, err)
		return nil, s.loadErr
	}
	s.selection = selection
	return s.selection, nil
}
