package generator

import (
	"context"
	"fmt"
	"html"
	"path"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

const defaultFeedItems = 20

type feedItem struct {
	Title       string
	Summary     string
	Link        string
	GUID        string
	Categories  []string
	PublishedAt time.Time
	UpdatedAt   time.Time
}

func (s *service) buildFeedItems(buildCtx *BuildContext) []feedItem {
	if buildCtx == nil || len(buildCtx.Posts) == 0 {
		return nil
	}

	items := make([]feedItem, 0, len(buildCtx.Posts))
	seen := map[string]struct{}{}
	for _, data := range buildCtx.Posts {
		record := data.Record
		route := strings.TrimSpace(data.Route)
		if route == "" {
			continue
		}
		guid := strings.ToLower(route)
		if _, ok := seen[guid]; ok {
			continue
		}
		seen[guid] = struct{}{}

		title := strings.TrimSpace(record.Title)
		if title == "" {
			title = route
		}
		publishedAt := firstNonZeroTime(
			timePtrOrZero(record.PublishedAt),
			record.Date,
			record.CreatedAt,
		)
		if publishedAt.IsZero() {
			publishedAt = buildCtx.GeneratedAt
		}
		updatedAt := firstNonZeroTime(record.UpdatedAt, publishedAt)

		items = append(items, feedItem{
			Title:       title,
			Summary:     feedSummaryFor(record),
			Link:        absoluteURL(s.cfg.Site.BaseURL, route),
			GUID:        absoluteURL(s.cfg.Site.BaseURL, route),
			Categories:  append([]string(nil), record.Categories...),
			PublishedAt: publishedAt,
			UpdatedAt:   updatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].GUID < items[j].GUID
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	limit := s.cfg.PostsPerFeed
	if limit <= 0 {
		limit = defaultFeedItems
	}
	if len(items) > limit {
		items = append([]feedItem(nil), items[:limit]...)
	}
	return items
}

func (s *service) writeFeeds(
	ctx context.Context,
	writer artifactWriter,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
) (int, error) {
	items := s.buildFeedItems(buildCtx)
	if len(items) == 0 {
		return 0, nil
	}
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	dirCache := map[string]struct{}{}
	if baseDir != "" {
		dirCache[baseDir] = struct{}{}
		if err := writer.EnsureDir(ctx, baseDir); err != nil {
			return 0, err
		}
	}

	total := 0
	rssContent := buildRSSFeed(siteMeta, items, buildCtx.GeneratedAt)
	rssPath := joinOutputPath(baseDir, "feed.xml")
	if err := ensureDir(ctx, writer, dirCache, path.Dir(rssPath)); err != nil {
		return total, err
	}
	if err := writer.WriteFile(ctx, writeFileRequest{
		Path:        rssPath,
		Content:     strings.NewReader(rssContent),
		Size:        int64(len(rssContent)),
		Category:    categoryFeed,
		ContentType: "application/rss+xml",
		Checksum:    computeHashFromString(rssContent),
		Metadata:    feedMetadata("rss", buildCtx.GeneratedAt),
	}); err != nil {
		return total, err
	}
	total++

	atomContent := buildAtomFeed(siteMeta, items, buildCtx.GeneratedAt)
	atomPath := joinOutputPath(baseDir, "feed.atom.xml")
	if err := ensureDir(ctx, writer, dirCache, path.Dir(atomPath)); err != nil {
		return total, err
	}
	if err := writer.WriteFile(ctx, writeFileRequest{
		Path:        atomPath,
		Content:     strings.NewReader(atomContent),
		Size:        int64(len(atomContent)),
		Category:    categoryFeed,
		ContentType: "application/atom+xml",
		Checksum:    computeHashFromString(atomContent),
		Metadata:    feedMetadata("atom", buildCtx.GeneratedAt),
	}); err != nil {
		return total, err
	}
	total++
	return total, nil
}

func buildRSSFeed(site SiteMetadata, items []feedItem, generatedAt time.Time) string {
	baseLink := baseURLWithFallback(site.BaseURL)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(siteTitle(site))))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(baseLink)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(siteDescription(site))))
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", generatedAt.UTC().Format(time.RFC1123Z)))
	for _, item := range items {
		pub := item.PublishedAt
		if pub.IsZero() {
			pub = generatedAt
		}
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", escapeXML(item.Link)))
		builder.WriteString(fmt.Sprintf("      <guid>%s</guid>\n", escapeXML(item.GUID)))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", pub.UTC().Format(time.RFC1123Z)))
		for _, category := range item.Categories {
			builder.WriteString(fmt.Sprintf("      <category>%s</category>\n", escapeXML(category)))
		}
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", escapeXML(item.Summary)))
		}
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString(`</rss>` + "\n")
	return builder.String()
}

func buildAtomFeed(site SiteMetadata, items []feedItem, generatedAt time.Time) string {
	baseLink := baseURLWithFallback(site.BaseURL)
	feedID := baseLink + "/feed.atom.xml"

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString(fmt.Sprintf("  <id>%s</id>\n", escapeXML(feedID)))
	builder.WriteString(fmt.Sprintf("  <title>%s</title>\n", escapeXML(siteTitle(site))))
	builder.WriteString(fmt.Sprintf("  <updated>%s</updated>\n", generatedAt.UTC().Format(time.RFC3339)))
	if author := strings.TrimSpace(site.Author); author != "" {
		builder.WriteString("  <author>\n")
		builder.WriteString(fmt.Sprintf("    <name>%s</name>\n", escapeXML(author)))
		builder.WriteString("  </author>\n")
	}
	builder.WriteString(fmt.Sprintf(`  <link rel="alternate" href="%s" />`+"\n", escapeXMLAttr(baseLink)))
	builder.WriteString(fmt.Sprintf(`  <link rel="self" href="%s" />`+"\n", escapeXMLAttr(feedID)))
	for _, item := range items {
		updated := item.UpdatedAt
		if updated.IsZero() {
			updated = item.PublishedAt
		}
		if updated.IsZero() {
			updated = generatedAt
		}
		builder.WriteString("  <entry>\n")
		builder.WriteString(fmt.Sprintf("    <id>%s</id>\n", escapeXML(item.GUID)))
		builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf(`    <link href="%s" />`+"\n", escapeXMLAttr(item.Link)))
		builder.WriteString(fmt.Sprintf("    <updated>%s</updated>\n", updated.UTC().Format(time.RFC3339)))
		if !item.PublishedAt.IsZero() {
			builder.WriteString(fmt.Sprintf("    <published>%s</published>\n", item.PublishedAt.UTC().Format(time.RFC3339)))
		}
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("    <summary>%s</summary>\n", escapeXML(item.Summary)))
		}
		builder.WriteString("  </entry>\n")
	}
	builder.WriteString(`</feed>` + "\n")
	return builder.String()
}

func feedMetadata(feedType string, generatedAt time.Time) map[string]string {
	return map[string]string{
		"generated_at": generatedAt.UTC().Format(time.RFC3339),
		"feed_type":    feedType,
	}
}

const feedSummaryLimit = 280

// feedSummaryFor extracts the first paragraph of the Markdown body as a plain
// text summary, truncated on a rune boundary.
func feedSummaryFor(record *interfaces.PostRecord) string {
	body := strings.TrimSpace(record.Body)
	if body == "" {
		return ""
	}
	paragraph := body
	if idx := strings.Index(body, "\n\n"); idx >= 0 {
		paragraph = body[:idx]
	}
	summary := normalizeWhitespace(stripInlineMarkup(paragraph))
	runes := []rune(summary)
	if len(runes) > feedSummaryLimit {
		trimmed := strings.TrimRightFunc(string(runes[:feedSummaryLimit]), unicode.IsSpace)
		summary = trimmed + "…"
	}
	return summary
}

func stripInlineMarkup(input string) string {
	replacer := strings.NewReplacer("**", "", "*", "", "`", "", "_", "", "#", "")
	return replacer.Replace(input)
}

func normalizeWhitespace(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return strings.Join(strings.Fields(input), " ")
}

func siteTitle(site SiteMetadata) string {
	if title := strings.TrimSpace(site.Title); title != "" {
		return title
	}
	if base := strings.TrimSpace(site.BaseURL); base != "" {
		return base
	}
	return "Blog Feed"
}

func siteDescription(site SiteMetadata) string {
	if desc := strings.TrimSpace(site.Description); desc != "" {
		return desc
	}
	return "Latest posts"
}

func baseURLWithFallback(base string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		return "http://localhost"
	}
	return trimmed
}

func absoluteURL(base, route string) string {
	targetBase := baseURLWithFallback(base)
	normalized := strings.TrimSpace(route)
	if normalized == "" {
		return targetBase
	}
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	return targetBase + normalized
}

func timePtrOrZero(ts *time.Time) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.UTC()
}

func firstNonZeroTime(instants ...time.Time) time.Time {
	for _, ts := range instants {
		if !ts.IsZero() {
			return ts
		}
	}
	return time.Time{}
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}

func escapeXMLAttr(value string) string {
	return html.EscapeString(value)
}
