package usersink

import (
	"context"
	"strings"
	"time"

	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/activity"
)

// Sink matches the go-users activity sink contract.
type Sink interface {
	Log(ctx context.Context, record usertypes.ActivityRecord) error
}

// Hook bridges blog activity events into a go-users activity sink. Events
// without a verb are dropped so callers can emit unconditionally.
type Hook struct {
	Sink Sink
}

// Notify satisfies activity.Notifier.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil {
		return nil
	}
	verb := strings.TrimSpace(event.Verb)
	if verb == "" {
		return nil
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	data := make(map[string]any, len(event.Metadata)+2)
	for key, value := range event.Metadata {
		data[key] = value
	}
	if code := strings.TrimSpace(event.DefinitionCode); code != "" {
		data["definition_code"] = code
	}
	if len(event.Recipients) > 0 {
		data["recipients"] = append([]string(nil), event.Recipients...)
	}

	record := usertypes.ActivityRecord{
		Verb:       verb,
		ActorID:    parseUUID(event.ActorID),
		UserID:     parseUUID(event.UserID),
		TenantID:   parseUUID(event.TenantID),
		ObjectType: strings.TrimSpace(event.ObjectType),
		ObjectID:   strings.TrimSpace(event.ObjectID),
		Channel:    strings.TrimSpace(event.Channel),
		OccurredAt: occurredAt,
		Data:       data,
	}
	return h.Sink.Log(ctx, record)
}

func parseUUID(value string) uuid.UUID {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil
	}
	return id
}
