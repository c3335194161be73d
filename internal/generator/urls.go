package generator

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// RouteConfig wires go-urlkit route groups into the generator. When no route
// manager is configured the builder falls back to the conventional
// /categories/<slug>/ and /tags/<slug>/ paths.
type RouteConfig struct {
	Manager      *urlkit.RouteManager
	Group        string
	CategoryName string
	TagName      string
	SlugParam    string
}

type routeBuilder struct {
	manager      *urlkit.RouteManager
	group        string
	categoryName string
	tagName      string
	slugParam    string
	baseURL      string
}

func newRouteBuilder(cfg RouteConfig, baseURL string) *routeBuilder {
	if cfg.CategoryName == "" {
		cfg.CategoryName = "category"
	}
	if cfg.TagName == "" {
		cfg.TagName = "tag"
	}
	if cfg.SlugParam == "" {
		cfg.SlugParam = "slug"
	}
	return &routeBuilder{
		manager:      cfg.Manager,
		group:        strings.TrimSpace(cfg.Group),
		categoryName: cfg.CategoryName,
		tagName:      cfg.TagName,
		slugParam:    cfg.SlugParam,
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// ArchiveRoute returns the site-relative path for a category or tag index.
func (r *routeBuilder) ArchiveRoute(kind, term string) string {
	termSlug := archiveTermSlug(term)
	if r.manager != nil && r.group != "" {
		routeName := r.categoryName
		if kind == "tag" {
			routeName = r.tagName
		}
		if url, err := r.buildManaged(routeName, termSlug); err == nil && url != "" {
			return relativizeURL(url, r.baseURL)
		}
	}
	if kind == "tag" {
		return "/tags/" + termSlug + "/"
	}
	return "/categories/" + termSlug + "/"
}

func (r *routeBuilder) buildManaged(route, termSlug string) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: urlkit route %q: %v", route, rec)
		}
	}()
	group := r.manager.Group(r.group)
	if group == nil {
		return "", fmt.Errorf("generator: route group %q not found", r.group)
	}
	return group.Builder(route).WithParam(r.slugParam, termSlug).Build()
}

// relativizeURL strips the base URL so routes stay site relative for output
// path mapping; absolute URLs are rebuilt from BaseURL when emitting sitemaps
// and feeds.
func relativizeURL(url, baseURL string) string {
	if baseURL != "" && strings.HasPrefix(url, baseURL) {
		url = strings.TrimPrefix(url, baseURL)
	}
	if url == "" {
		return "/"
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return url
}
