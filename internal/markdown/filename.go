package markdown

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// filenamePattern matches the YYYY-MM-DD-slug naming convention the corpus
// follows for every post file.
var filenamePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(.+)$`)

// markdownExtensions lists the file extensions recognised as post sources.
var markdownExtensions = map[string]struct{}{
	".markdown": {},
	".md":       {},
}

// FileName carries the metadata encoded in a post's filename.
type FileName struct {
	// Date is the publication date prefix, midnight UTC.
	Date time.Time
	// Slug is the remainder after the date prefix, extension stripped.
	Slug string
}

// ParseFilename extracts the date and slug from a post filename. It accepts
// full paths and bases its decision on the final path element only.
func ParseFilename(name string) (FileName, error) {
	base := path.Base(filepath.ToSlash(name))
	ext := strings.ToLower(filepath.Ext(base))
	if _, ok := markdownExtensions[ext]; !ok {
		return FileName{}, fmt.Errorf("%w: %s has extension %q", post.ErrFilenameInvalid, base, ext)
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	matches := filenamePattern.FindStringSubmatch(stem)
	if matches == nil {
		return FileName{}, fmt.Errorf("%w: %s does not follow YYYY-MM-DD-slug naming", post.ErrFilenameInvalid, base)
	}

	date, err := time.Parse("2006-01-02", strings.Join(matches[1:4], "-"))
	if err != nil {
		return FileName{}, fmt.Errorf("%w: %s has an impossible date: %v", post.ErrFilenameInvalid, base, err)
	}

	slug := strings.TrimSpace(matches[4])
	if slug == "" {
		return FileName{}, fmt.Errorf("%w: %s has an empty slug", post.ErrFilenameInvalid, base)
	}

	return FileName{Date: date, Slug: slug}, nil
}

// DateRoute builds the Jekyll style date permalink used when front matter
// does not declare one: /YYYY/MM/DD/slug/.
func DateRoute(date time.Time, slug string) string {
	return fmt.Sprintf("/%04d/%02d/%02d/%s/", date.Year(), int(date.Month()), date.Day(), slug)
}
