package postcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

type stubPublisher struct {
	publishPermalink   string
	unpublishPermalink string
	publishErr         error
	unpublishErr       error
}

func (s *stubPublisher) Publish(_ context.Context, permalink string) (*interfaces.PostRecord, error) {
	s.publishPermalink = permalink
	if s.publishErr != nil {
		return nil, s.publishErr
	}
	return &interfaces.PostRecord{Permalink: permalink, Title: "Decorator Design Pattern", Published: true}, nil
}

func (s *stubPublisher) Unpublish(_ context.Context, permalink string) (*interfaces.PostRecord, error) {
	s.unpublishPermalink = permalink
	if s.unpublishErr != nil {
		return nil, s.unpublishErr
	}
	return &interfaces.PostRecord{Permalink: permalink, Title: "Decorator Design Pattern"}, nil
}

func TestPublishPostHandlerDelegates(t *testing.T) {
	posts := &stubPublisher{}
	handler := NewPublishPostHandler(posts, nil)

	msg := PublishPostCommand{Permalink: "/decorator-design-pattern/"}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if posts.publishPermalink != "/decorator-design-pattern/" {
		t.Fatalf("expected permalink to propagate, got %q", posts.publishPermalink)
	}
}

func TestPublishPostHandlerValidatesPermalink(t *testing.T) {
	posts := &stubPublisher{}
	handler := NewPublishPostHandler(posts, nil)

	if err := handler.Execute(context.Background(), PublishPostCommand{}); err == nil {
		t.Fatal("expected validation error for missing permalink")
	}
	if posts.publishPermalink != "" {
		t.Fatal("expected no service call on validation failure")
	}
}

func TestPublishPostHandlerPropagatesServiceErrors(t *testing.T) {
	posts := &stubPublisher{publishErr: blogpost.ErrAlreadyPublished}
	handler := NewPublishPostHandler(posts, nil)

	err := handler.Execute(context.Background(), PublishPostCommand{Permalink: "/decorator-design-pattern/"})
	if !errors.Is(err, blogpost.ErrAlreadyPublished) {
		t.Fatalf("expected ErrAlreadyPublished, got %v", err)
	}
}

func TestUnpublishPostHandlerDelegates(t *testing.T) {
	posts := &stubPublisher{}
	handler := NewUnpublishPostHandler(posts, nil)

	msg := UnpublishPostCommand{Permalink: "/decorator-design-pattern/"}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if posts.unpublishPermalink != "/decorator-design-pattern/" {
		t.Fatalf("expected permalink to propagate, got %q", posts.unpublishPermalink)
	}
}

func TestUnpublishPostHandlerPropagatesServiceErrors(t *testing.T) {
	posts := &stubPublisher{unpublishErr: blogpost.ErrAlreadyUnpublished}
	handler := NewUnpublishPostHandler(posts, nil)

	err := handler.Execute(context.Background(), UnpublishPostCommand{Permalink: "/decorator-design-pattern/"})
	if !errors.Is(err, blogpost.ErrAlreadyUnpublished) {
		t.Fatalf("expected ErrAlreadyUnpublished, got %v", err)
	}
}

func TestPublishCommandTypes(t *testing.T) {
	if got := (PublishPostCommand{}).Type(); got != "blog.posts.publish" {
		t.Fatalf("unexpected message type %q", got)
	}
	if got := (UnpublishPostCommand{}).Type(); got != "blog.posts.unpublish" {
		t.Fatalf("unexpected message type %q", got)
	}
}
