package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/identity"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// archiveLayout selects the template used for category and tag index pages.
const archiveLayout = "archive"

// BuildContext aggregates everything a build run needs.
type BuildContext struct {
	GeneratedAt time.Time
	Posts       []*PostData
	Archives    []*ArchiveData
	Options     BuildOptions
}

// PostData encapsulates a post and its resolved build metadata.
type PostData struct {
	Record   *interfaces.PostRecord
	Route    string
	Metadata DependencyMetadata
}

// ArchiveData describes a category or tag index page.
type ArchiveData struct {
	// ID is stable across builds, derived from the kind and term.
	ID uuid.UUID
	// Kind is "category" or "tag".
	Kind     string
	Term     string
	Route    string
	Posts    []*interfaces.PostRecord
	Metadata DependencyMetadata
}

// DependencyMetadata tracks hashes and timestamps for incremental builds.
type DependencyMetadata struct {
	Sources      map[string]string
	Hash         string
	LastModified time.Time
}

func (s *service) loadContext(ctx context.Context, opts BuildOptions) (*BuildContext, error) {
	if s.deps.Posts == nil {
		return nil, errPostServiceRequired
	}

	records, err := s.deps.Posts.List(ctx, interfaces.PostListOptions{PublishedOnly: true})
	if err != nil {
		return nil, err
	}

	var filter map[string]struct{}
	if len(opts.Permalinks) > 0 {
		filter = make(map[string]struct{}, len(opts.Permalinks))
		for _, permalink := range opts.Permalinks {
			permalink = strings.TrimSpace(permalink)
			if permalink != "" {
				filter[strings.ToLower(permalink)] = struct{}{}
			}
		}
	}

	posts := make([]*PostData, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		if filter != nil {
			if _, ok := filter[strings.ToLower(record.Permalink)]; !ok {
				continue
			}
		}
		posts = append(posts, &PostData{
			Record:   record,
			Route:    record.Permalink,
			Metadata: computeDependencyMetadata(record),
		})
	}

	buildCtx := &BuildContext{
		GeneratedAt: s.now().UTC(),
		Posts:       posts,
		Options:     opts,
	}
	// Archives cover the full published corpus even when the build is
	// narrowed to specific permalinks, otherwise index pages lose entries.
	if filter == nil {
		buildCtx.Archives = buildArchives(s.routes, records)
	}
	return buildCtx, nil
}

func buildArchives(routes *routeBuilder, records []*interfaces.PostRecord) []*ArchiveData {
	categories := map[string][]*interfaces.PostRecord{}
	tags := map[string][]*interfaces.PostRecord{}
	for _, record := range records {
		if record == nil {
			continue
		}
		for _, category := range record.Categories {
			category = strings.TrimSpace(category)
			if category != "" {
				categories[category] = append(categories[category], record)
			}
		}
		for _, tag := range record.Tags {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags[tag] = append(tags[tag], record)
			}
		}
	}

	archives := make([]*ArchiveData, 0, len(categories)+len(tags))
	archives = append(archives, archivesForKind("category", categories, routes)...)
	archives = append(archives, archivesForKind("tag", tags, routes)...)
	sort.Slice(archives, func(i, j int) bool {
		return archives[i].Route < archives[j].Route
	})
	return archives
}

func archivesForKind(kind string, grouped map[string][]*interfaces.PostRecord, routes *routeBuilder) []*ArchiveData {
	terms := make([]string, 0, len(grouped))
	for term := range grouped {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	archives := make([]*ArchiveData, 0, len(terms))
	for _, term := range terms {
		posts := append([]*interfaces.PostRecord(nil), grouped[term]...)
		sort.Slice(posts, func(i, j int) bool {
			if posts[i].Date.Equal(posts[j].Date) {
				return posts[i].Permalink < posts[j].Permalink
			}
			return posts[i].Date.After(posts[j].Date)
		})
		id := archiveID(kind, term)
		archives = append(archives, &ArchiveData{
			ID:       id,
			Kind:     kind,
			Term:     term,
			Route:    routes.ArchiveRoute(kind, term),
			Posts:    posts,
			Metadata: computeArchiveMetadata(id, kind, term, posts),
		})
	}
	return archives
}

func computeDependencyMetadata(record *interfaces.PostRecord) DependencyMetadata {
	sources := map[string]string{
		"post": joinParts(
			record.ID.String(),
			record.Permalink,
			record.Layout,
			record.Checksum,
			record.UpdatedAt.UTC().Format(time.RFC3339Nano),
		),
		"body": computeHashFromString(record.BodyHTML),
	}
	return DependencyMetadata{
		Sources:      sources,
		Hash:         hashSources(sources),
		LastModified: lastModifiedFor(record),
	}
}

// archiveID derives the stable identifier for a category or tag archive.
func archiveID(kind, term string) uuid.UUID {
	if kind == "tag" {
		return identity.TagUUID(term)
	}
	return identity.CategoryUUID(term)
}

func computeArchiveMetadata(id uuid.UUID, kind, term string, posts []*interfaces.PostRecord) DependencyMetadata {
	parts := make([]string, 0, len(posts)+1)
	parts = append(parts, joinParts(id.String(), kind+"::"+term))
	lastModified := time.Time{}
	for _, post := range posts {
		parts = append(parts, joinParts(post.Permalink, post.Checksum))
		if updated := lastModifiedFor(post); updated.After(lastModified) {
			lastModified = updated
		}
	}
	sources := map[string]string{"archive": joinParts(parts...)}
	return DependencyMetadata{
		Sources:      sources,
		Hash:         hashSources(sources),
		LastModified: lastModified,
	}
}

func lastModifiedFor(record *interfaces.PostRecord) time.Time {
	if !record.UpdatedAt.IsZero() {
		return record.UpdatedAt
	}
	if record.PublishedAt != nil {
		return *record.PublishedAt
	}
	return record.Date
}

func hashSources(sources map[string]string) string {
	keys := make([]string, 0, len(sources))
	for key := range sources {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	hasher := sha256.New()
	for _, key := range keys {
		hasher.Write([]byte(key))
		hasher.Write([]byte{0})
		hasher.Write([]byte(sources[key]))
		hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func joinParts(parts ...string) string {
	return strings.Join(parts, "|")
}

func archiveTermSlug(term string) string {
	normalized, err := blogpost.NormalizeSlug(strings.TrimSpace(term))
	if err != nil || normalized == "" {
		return "misc"
	}
	return normalized
}
