package post

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/identity"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/activity"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

func fixedNow() time.Time {
	return time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC)
}

func newTestService(t *testing.T, opts ...ServiceOption) Service {
	t.Helper()
	opts = append([]ServiceOption{WithClock(fixedNow)}, opts...)
	svc, err := NewService(NewMemoryPostRepository(), opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func decoratorCreateRequest() interfaces.PostCreateRequest {
	return interfaces.PostCreateRequest{
		Layout:     "post",
		Title:      "Decorator Design Pattern",
		Date:       time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC),
		Comments:   true,
		Published:  true,
		Categories: []string{"design patterns"},
		Tags:       []string{"c#", "decorator"},
		Permalink:  "/decorator-design-pattern/",
		Body:       "The Decorator pattern attaches additional responsibilities to an object.",
		SourcePath: "2016-03-14-decorator-design-pattern.markdown",
	}
}

func TestCreateStoresPost(t *testing.T) {
	svc := newTestService(t)

	record, err := svc.Create(context.Background(), decoratorCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if record.ID != identity.PostUUID("/decorator-design-pattern/") {
		t.Fatalf("expected deterministic id, got %s", record.ID)
	}
	if record.PublishedAt == nil || !record.PublishedAt.Equal(fixedNow()) {
		t.Fatalf("expected publish stamp, got %v", record.PublishedAt)
	}

	fetched, err := svc.GetByPermalink(context.Background(), "/decorator-design-pattern/")
	if err != nil {
		t.Fatalf("GetByPermalink: %v", err)
	}
	if fetched.Title != "Decorator Design Pattern" {
		t.Fatalf("unexpected title %q", fetched.Title)
	}
}

func TestCreateRejectsDuplicatePermalink(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(context.Background(), decoratorCreateRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req := decoratorCreateRequest()
	req.Title = "Decorator Revisited"
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, blogpost.ErrPermalinkExists) {
		t.Fatalf("expected ErrPermalinkExists, got %v", err)
	}

	var conflict *blogpost.PermalinkConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected PermalinkConflictError, got %T", err)
	}
	if conflict.ExistingID != identity.PostUUID("/decorator-design-pattern/") {
		t.Fatalf("conflict should carry existing id")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name    string
		mutate  func(*interfaces.PostCreateRequest)
		wantErr error
	}{
		{"missing title", func(r *interfaces.PostCreateRequest) { r.Title = " " }, blogpost.ErrTitleRequired},
		{"missing permalink", func(r *interfaces.PostCreateRequest) { r.Permalink = "" }, blogpost.ErrPermalinkRequired},
		{"relative permalink", func(r *interfaces.PostCreateRequest) { r.Permalink = "decorator/" }, blogpost.ErrPermalinkInvalid},
		{"permalink with spaces", func(r *interfaces.PostCreateRequest) { r.Permalink = "/decorator pattern/" }, blogpost.ErrPermalinkInvalid},
		{"missing date", func(r *interfaces.PostCreateRequest) { r.Date = time.Time{} }, blogpost.ErrDateRequired},
		{"missing body", func(r *interfaces.PostCreateRequest) { r.Body = "" }, blogpost.ErrBodyRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := decoratorCreateRequest()
			tc.mutate(&req)
			if _, err := svc.Create(context.Background(), req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateValidatesFrontMatterPayload(t *testing.T) {
	svc := newTestService(t)

	req := decoratorCreateRequest()
	req.Metadata = map[string]any{
		"frontmatter": map[string]any{
			"title":    "Decorator Design Pattern",
			"comments": "yes",
		},
	}

	if _, err := svc.Create(context.Background(), req); !errors.Is(err, blogpost.ErrFrontMatterInvalid) {
		t.Fatalf("expected ErrFrontMatterInvalid, got %v", err)
	}
}

func TestUpdateDetectsPermalinkConflict(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Create(context.Background(), decoratorCreateRequest())
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := decoratorCreateRequest()
	second.Title = "Command Design Pattern"
	second.Permalink = "/command-design-pattern/"
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("second create: %v", err)
	}

	_, err = svc.Update(context.Background(), interfaces.PostUpdateRequest{
		ID:        first.ID,
		Title:     first.Title,
		Date:      first.Date,
		Permalink: "/command-design-pattern/",
		Body:      first.Body,
	})
	if !errors.Is(err, blogpost.ErrPermalinkExists) {
		t.Fatalf("expected ErrPermalinkExists, got %v", err)
	}
}

func TestListFiltersAndOrders(t *testing.T) {
	svc := newTestService(t)

	posts := []interfaces.PostCreateRequest{
		decoratorCreateRequest(),
		{
			Title: "Command Design Pattern", Permalink: "/command-design-pattern/",
			Date: time.Date(2016, 4, 2, 18, 15, 0, 0, time.UTC), Published: true,
			Categories: []string{"design patterns"}, Tags: []string{"c#", "command"},
			Body: "Encapsulate a request as an object.",
		},
		{
			Title: "Angular CLI First Steps", Permalink: "/2017/01/20/angular-cli-first-steps/",
			Date: time.Date(2017, 1, 20, 8, 0, 0, 0, time.UTC), Published: false,
			Categories: []string{"angular"}, Tags: []string{"angular-cli"},
			Body: "Scaffolding a project.",
		},
	}
	for _, req := range posts {
		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Fatalf("create %s: %v", req.Permalink, err)
		}
	}

	published, err := svc.List(context.Background(), interfaces.PostListOptions{PublishedOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(published))
	}
	if published[0].Permalink != "/command-design-pattern/" {
		t.Fatalf("expected newest first, got %s", published[0].Permalink)
	}

	byCategory, err := svc.List(context.Background(), interfaces.PostListOptions{Category: "Design Patterns"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 design pattern posts, got %d", len(byCategory))
	}

	byTag, err := svc.List(context.Background(), interfaces.PostListOptions{Tag: "angular-cli"})
	if err != nil {
		t.Fatalf("List by tag: %v", err)
	}
	if len(byTag) != 1 || byTag[0].Permalink != "/2017/01/20/angular-cli-first-steps/" {
		t.Fatalf("unexpected tag filter result %#v", byTag)
	}
}

func TestPublishLifecycle(t *testing.T) {
	svc := newTestService(t)

	req := decoratorCreateRequest()
	req.Published = false
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	published, err := svc.Publish(context.Background(), req.Permalink)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !published.Published || published.PublishedAt == nil {
		t.Fatalf("expected published record, got %#v", published)
	}

	if _, err := svc.Publish(context.Background(), req.Permalink); !errors.Is(err, blogpost.ErrAlreadyPublished) {
		t.Fatalf("expected ErrAlreadyPublished, got %v", err)
	}

	unpublished, err := svc.Unpublish(context.Background(), req.Permalink)
	if err != nil {
		t.Fatalf("Unpublish: %v", err)
	}
	if unpublished.Published || unpublished.PublishedAt != nil {
		t.Fatalf("expected unpublished record, got %#v", unpublished)
	}

	if _, err := svc.Unpublish(context.Background(), req.Permalink); !errors.Is(err, blogpost.ErrAlreadyUnpublished) {
		t.Fatalf("expected ErrAlreadyUnpublished, got %v", err)
	}
}

func TestDeleteSoftHidesPost(t *testing.T) {
	svc := newTestService(t)

	record, err := svc.Create(context.Background(), decoratorCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), interfaces.PostDeleteRequest{ID: record.ID}); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	visible, err := svc.List(context.Background(), interfaces.PostListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("soft deleted post should be hidden, got %#v", visible)
	}

	all, err := svc.List(context.Background(), interfaces.PostListOptions{IncludeDeleted: true})
	if err != nil {
		t.Fatalf("List deleted: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected soft deleted record retained, got %d", len(all))
	}
}

func TestUpdateRestoresSoftDeletedPost(t *testing.T) {
	svc := newTestService(t)

	record, err := svc.Create(context.Background(), decoratorCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), interfaces.PostDeleteRequest{ID: record.ID}); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	req := decoratorCreateRequest()
	restored, err := svc.Update(context.Background(), interfaces.PostUpdateRequest{
		ID:        record.ID,
		Title:     req.Title,
		Date:      req.Date,
		Published: true,
		Permalink: req.Permalink,
		Body:      req.Body,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Fatalf("update should clear the soft delete, got %v", restored.DeletedAt)
	}

	visible, err := svc.List(context.Background(), interfaces.PostListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("expected restored post to be listed, got %#v", visible)
	}
}

func TestCreateRejectsMalformedMetadata(t *testing.T) {
	svc := newTestService(t)

	req := decoratorCreateRequest()
	req.Metadata = map[string]any{"frontmatter": "not a map"}

	if _, err := svc.Create(context.Background(), req); !errors.Is(err, blogpost.ErrMetadataInvalid) {
		t.Fatalf("expected ErrMetadataInvalid, got %v", err)
	}
}

func TestServiceEmitsActivityEvents(t *testing.T) {
	var verbs []string
	notifier := activity.NotifierFunc(func(_ context.Context, event activity.Event) error {
		verbs = append(verbs, event.Verb)
		return nil
	})

	svc := newTestService(t, WithActivityNotifier(notifier))

	req := decoratorCreateRequest()
	req.Published = false
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Publish(context.Background(), req.Permalink); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(verbs) != 2 || verbs[0] != "post:create" || verbs[1] != "post:publish" {
		t.Fatalf("unexpected verbs %#v", verbs)
	}
}
