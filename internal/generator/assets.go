package generator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// AssetResolver resolves theme assets for copying into static outputs.
type AssetResolver interface {
	Open(ctx context.Context, asset string) (io.ReadCloser, error)
	ResolvePath(asset string) (string, error)
}

// DirAssetResolver serves theme assets from a directory on disk.
type DirAssetResolver struct {
	fsys fs.FS
}

// NewDirAssetResolver creates a resolver rooted at the theme base path.
func NewDirAssetResolver(basePath string) *DirAssetResolver {
	return &DirAssetResolver{fsys: os.DirFS(filepath.Clean(basePath))}
}

// NewFSAssetResolver creates a resolver over an arbitrary filesystem.
func NewFSAssetResolver(fsys fs.FS) *DirAssetResolver {
	return &DirAssetResolver{fsys: fsys}
}

func (r *DirAssetResolver) Open(_ context.Context, asset string) (io.ReadCloser, error) {
	cleaned := strings.TrimLeft(strings.TrimSpace(asset), "/")
	if cleaned == "" {
		return nil, fmt.Errorf("generator: asset name required")
	}
	file, err := r.fsys.Open(cleaned)
	if err != nil {
		return nil, fmt.Errorf("generator: open asset %s: %w", cleaned, err)
	}
	return file, nil
}

func (r *DirAssetResolver) ResolvePath(asset string) (string, error) {
	return strings.TrimLeft(strings.TrimSpace(asset), "/"), nil
}

// NoOpAssetResolver skips asset resolution.
type NoOpAssetResolver struct{}

func (NoOpAssetResolver) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("generator: asset resolver not configured")
}

func (NoOpAssetResolver) ResolvePath(string) (string, error) {
	return "", fmt.Errorf("generator: asset resolver not configured")
}

func collectThemeAssets(selection *gotheme.Selection) []string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	assets := selection.Manifest.Assets.Files
	if variant := strings.TrimSpace(selection.Variant); variant != "" {
		if v, ok := selection.Manifest.Variants[variant]; ok && len(v.Assets.Files) > 0 {
			merged := make(map[string]string, len(selection.Manifest.Assets.Files)+len(v.Assets.Files))
			for key, assetPath := range selection.Manifest.Assets.Files {
				merged[key] = assetPath
			}
			for key, assetPath := range v.Assets.Files {
				merged[key] = assetPath
			}
			assets = merged
		}
	}

	seen := map[string]struct{}{}
	var out []string
	for _, asset := range assets {
		asset = strings.TrimPrefix(strings.TrimSpace(asset), "/")
		if asset == "" {
			continue
		}
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		out = append(out, filepath.ToSlash(asset))
	}
	return out
}

func readAll(reader io.ReadCloser) ([]byte, error) {
	data, err := io.ReadAll(reader)
	closeErr := reader.Close()
	if err != nil {
		return nil, err
	}
	return data, closeErr
}

func detectAssetContentType(asset string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(asset), "."))
	switch ext {
	case "css":
		return "text/css"
	case "js":
		return "application/javascript"
	case "json":
		return "application/json"
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
