package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	manifestFileName    = ".generator-manifest.json"
	manifestFileVersion = 1
)

// buildManifest stores metadata about the last successful build to support
// incremental runs.
type buildManifest struct {
	Version     int                        `json:"version"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Posts       map[string]manifestPost    `json:"posts"`
	Assets      map[string]manifestAsset   `json:"assets"`
	Metadata    map[string]json.RawMessage `json:"metadata,omitempty"`
}

type manifestPost struct {
	Permalink    string    `json:"permalink"`
	Route        string    `json:"route"`
	Output       string    `json:"output"`
	Template     string    `json:"template"`
	Hash         string    `json:"hash"`
	Checksum     string    `json:"checksum"`
	LastModified time.Time `json:"last_modified"`
	RenderedAt   time.Time `json:"rendered_at"`
}

type manifestAsset struct {
	Source   string    `json:"source"`
	Output   string    `json:"output"`
	Checksum string    `json:"checksum"`
	Size     int64     `json:"size"`
	CopiedAt time.Time `json:"copied_at"`
}

func newBuildManifest() *buildManifest {
	return &buildManifest{
		Version:  manifestFileVersion,
		Posts:    map[string]manifestPost{},
		Assets:   map[string]manifestAsset{},
		Metadata: map[string]json.RawMessage{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(), nil
	}
	var manifest buildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("generator: parse manifest: %w", err)
	}
	if manifest.Posts == nil {
		manifest.Posts = map[string]manifestPost{}
	}
	if manifest.Assets == nil {
		manifest.Assets = map[string]manifestAsset{}
	}
	if manifest.Metadata == nil {
		manifest.Metadata = map[string]json.RawMessage{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	cloned := *m
	if cloned.Version == 0 {
		cloned.Version = manifestFileVersion
	}
	if cloned.Posts == nil {
		cloned.Posts = map[string]manifestPost{}
	}
	if cloned.Assets == nil {
		cloned.Assets = map[string]manifestAsset{}
	}
	// Stable ordering for deterministic output.
	type orderedManifest struct {
		Version     int                        `json:"version"`
		GeneratedAt time.Time                  `json:"generated_at"`
		Posts       []manifestPost             `json:"posts"`
		Assets      []manifestAsset            `json:"assets"`
		Metadata    map[string]json.RawMessage `json:"metadata,omitempty"`
	}
	ordered := orderedManifest{
		Version:     cloned.Version,
		GeneratedAt: cloned.GeneratedAt,
		Metadata:    cloned.Metadata,
	}
	if len(cloned.Posts) > 0 {
		ordered.Posts = make([]manifestPost, 0, len(cloned.Posts))
		for _, entry := range cloned.Posts {
			ordered.Posts = append(ordered.Posts, entry)
		}
		sort.Slice(ordered.Posts, func(i, j int) bool {
			return ordered.Posts[i].Permalink < ordered.Posts[j].Permalink
		})
	}
	if len(cloned.Assets) > 0 {
		ordered.Assets = make([]manifestAsset, 0, len(cloned.Assets))
		for _, entry := range cloned.Assets {
			ordered.Assets = append(ordered.Assets, entry)
		}
		sort.Slice(ordered.Assets, func(i, j int) bool {
			return ordered.Assets[i].Source < ordered.Assets[j].Source
		})
	}
	return json.MarshalIndent(ordered, "", "  ")
}

func (m *buildManifest) postKey(permalink string) string {
	return strings.ToLower(strings.TrimSpace(permalink))
}

func (m *buildManifest) lookupPost(permalink string) (manifestPost, bool) {
	if m == nil || len(m.Posts) == 0 {
		return manifestPost{}, false
	}
	entry, ok := m.Posts[m.postKey(permalink)]
	return entry, ok
}

func (m *buildManifest) setPost(entry manifestPost) {
	if m == nil {
		return
	}
	if m.Posts == nil {
		m.Posts = map[string]manifestPost{}
	}
	m.Posts[m.postKey(entry.Permalink)] = entry
}

func (m *buildManifest) shouldSkipPost(permalink, hash, output string) bool {
	entry, ok := m.lookupPost(permalink)
	if !ok {
		return false
	}
	if entry.Hash != hash {
		return false
	}
	return strings.TrimSpace(entry.Output) == strings.TrimSpace(output)
}

func (m *buildManifest) lookupAsset(source string) (manifestAsset, bool) {
	if m == nil || len(m.Assets) == 0 {
		return manifestAsset{}, false
	}
	entry, ok := m.Assets[strings.TrimSpace(source)]
	return entry, ok
}

func (m *buildManifest) setAsset(entry manifestAsset) {
	if m == nil {
		return
	}
	if m.Assets == nil {
		m.Assets = map[string]manifestAsset{}
	}
	m.Assets[strings.TrimSpace(entry.Source)] = entry
}

func (m *buildManifest) shouldSkipAsset(source, checksum, output string) bool {
	entry, ok := m.lookupAsset(source)
	if !ok {
		return false
	}
	if entry.Checksum != checksum {
		return false
	}
	return strings.TrimSpace(entry.Output) == strings.TrimSpace(output)
}
