package generator

import (
	"path"
	"strings"
)

// buildOutputPath maps a site route to its on-disk artifact, following the
// directory/index.html convention so permalinks keep trailing-slash URLs.
func buildOutputPath(route string) string {
	clean := strings.Trim(strings.TrimSpace(route), "/")
	if clean == "" {
		return "index.html"
	}
	return path.Join(clean, "index.html")
}
