package activity

import (
	"context"
	"time"
)

// Event captures a domain-level activity emitted by the blog services, e.g.
// a post being imported, published, or deleted.
type Event struct {
	Verb           string
	ActorID        string
	UserID         string
	TenantID       string
	ObjectType     string
	ObjectID       string
	Channel        string
	DefinitionCode string
	Recipients     []string
	Metadata       map[string]any
	OccurredAt     time.Time
}

// Notifier receives activity events. Implementations must tolerate partially
// populated events; unknown actors are recorded as nil UUIDs downstream.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, event Event) error

// Notify satisfies Notifier.
func (fn NotifierFunc) Notify(ctx context.Context, event Event) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// NoOp returns a notifier that drops every event.
func NoOp() Notifier {
	return NotifierFunc(func(context.Context, Event) error { return nil })
}
