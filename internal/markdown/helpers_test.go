package markdown

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/identity"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	"github.com/code-bluecomment/code-bluecomment.github.io/post"
)

const decoratorPost = `---
layout: post
title: Decorator Design Pattern
date: 2016-03-14 09:30:00 +0000
comments: true
categories: [design patterns]
tags: [c#, decorator]
permalink: /decorator-design-pattern/
---
The **Decorator** pattern attaches additional responsibilities to an object dynamically.

` + "```csharp\npublic interface IComponent { void Operation(); }\n```\n"

const commandPost = `---
layout: post
title: Command Design Pattern
date: 2016-04-02 18:15:00 +0000
categories: [design patterns]
tags: [c#, command]
permalink: /command-design-pattern/
---
Encapsulate a request as an object.
`

const draftPost = `---
layout: post
title: Angular CLI First Steps
date: 2017-01-20 08:00:00 +0000
published: false
categories: [angular]
tags: [angular-cli]
---
Scaffolding a project with the Angular CLI.
`

var corpusFixtures = map[string]string{
	"2016-03-14-decorator-design-pattern.markdown": decoratorPost,
	"2016-04-02-command-design-pattern.markdown":   commandPost,
	"2017-01-20-angular-cli-first-steps.markdown":  draftPost,
}

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func newTestService(t *testing.T, posts interfaces.PostService) *Service {
	t.Helper()
	dir := writeCorpus(t, corpusFixtures)
	svc, err := NewService(Config{
		BasePath: dir,
		Posts:    posts,
	}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

// stubPostService records writes in memory, keyed by permalink.
type stubPostService struct {
	records map[string]*interfaces.PostRecord
	deleted []string
}

func newStubPostService() *stubPostService {
	return &stubPostService{records: map[string]*interfaces.PostRecord{}}
}

func (s *stubPostService) Create(ctx context.Context, req interfaces.PostCreateRequest) (*interfaces.PostRecord, error) {
	if _, ok := s.records[req.Permalink]; ok {
		return nil, &post.PermalinkConflictError{Permalink: req.Permalink}
	}
	record := &interfaces.PostRecord{
		ID:         identity.PostUUID(req.Permalink),
		Layout:     req.Layout,
		Title:      req.Title,
		Date:       req.Date,
		Comments:   req.Comments,
		Published:  req.Published,
		Categories: req.Categories,
		Tags:       req.Tags,
		Permalink:  req.Permalink,
		Body:       req.Body,
		BodyHTML:   req.BodyHTML,
		SourcePath: req.SourcePath,
		Checksum:   req.Checksum,
		Metadata:   req.Metadata,
	}
	s.records[req.Permalink] = record
	return record, nil
}

func (s *stubPostService) Update(ctx context.Context, req interfaces.PostUpdateRequest) (*interfaces.PostRecord, error) {
	for _, record := range s.records {
		if record.ID == req.ID {
			record.Title = req.Title
			record.Body = req.Body
			record.BodyHTML = req.BodyHTML
			record.Checksum = req.Checksum
			record.Published = req.Published
			record.SourcePath = req.SourcePath
			return record, nil
		}
	}
	return nil, &post.NotFoundError{Resource: "post", Key: req.ID.String()}
}

func (s *stubPostService) Delete(ctx context.Context, req interfaces.PostDeleteRequest) error {
	for permalink, record := range s.records {
		if record.ID == req.ID {
			delete(s.records, permalink)
			s.deleted = append(s.deleted, permalink)
			return nil
		}
	}
	return &post.NotFoundError{Resource: "post", Key: req.ID.String()}
}

func (s *stubPostService) GetByPermalink(ctx context.Context, permalink string) (*interfaces.PostRecord, error) {
	record, ok := s.records[strings.TrimSpace(permalink)]
	if !ok {
		return nil, &post.NotFoundError{Resource: "post", Key: permalink}
	}
	return record, nil
}

func (s *stubPostService) List(ctx context.Context, opts interfaces.PostListOptions) ([]*interfaces.PostRecord, error) {
	out := make([]*interfaces.PostRecord, 0, len(s.records))
	for _, record := range s.records {
		if opts.PublishedOnly && !record.Published {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

var _ interfaces.PostService = (*stubPostService)(nil)

func seedOrphan(s *stubPostService, permalink string) uuid.UUID {
	id := identity.PostUUID(permalink)
	s.records[permalink] = &interfaces.PostRecord{
		ID:        id,
		Permalink: permalink,
		Published: true,
		Checksum:  "stale",
	}
	return id
}
