package post_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/code-bluecomment/code-bluecomment.github.io/post"
)

func TestNotFoundErrorUnwraps(t *testing.T) {
	err := &post.NotFoundError{Resource: "post", Key: "/missing-entry/"}
	if !errors.Is(err, post.ErrNotFound) {
		t.Fatal("expected NotFoundError to unwrap to ErrNotFound")
	}
	if !strings.Contains(err.Error(), "/missing-entry/") {
		t.Fatalf("expected key in message, got %q", err.Error())
	}
}

func TestPermalinkConflictErrorMessage(t *testing.T) {
	err := &post.PermalinkConflictError{
		Permalink:  "/decorator-design-pattern/",
		SourcePath: "_posts/2016-03-14-decorator-design-pattern.markdown",
		OtherPath:  "_posts/2016-03-01-decorator-design-pattern.markdown",
	}
	if !errors.Is(err, post.ErrPermalinkExists) {
		t.Fatal("expected conflict to unwrap to ErrPermalinkExists")
	}
	msg := err.Error()
	if !strings.Contains(msg, "/decorator-design-pattern/") {
		t.Fatalf("expected permalink in message, got %q", msg)
	}
	if !strings.Contains(msg, "conflicts-with=_posts/2016-03-01-decorator-design-pattern.markdown") {
		t.Fatalf("expected conflicting source in message, got %q", msg)
	}
}

func TestNormalizeSlug(t *testing.T) {
	got, err := post.NormalizeSlug("Decorator Design Pattern")
	if err != nil {
		t.Fatalf("normalize slug: %v", err)
	}
	if got != "decorator-design-pattern" {
		t.Fatalf("expected decorator-design-pattern, got %q", got)
	}
	if !post.IsValidSlug(got) {
		t.Fatalf("expected %q to be a valid slug", got)
	}
}
