package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PostUUID derives a stable identifier from the post permalink so repeated
// imports of the same file converge on one record.
func PostUUID(permalink string) uuid.UUID {
	return UUID("blog:post:" + strings.TrimSpace(permalink))
}

// CategoryUUID derives a stable identifier for a category archive.
func CategoryUUID(name string) uuid.UUID {
	return UUID("blog:category:" + strings.ToLower(strings.TrimSpace(name)))
}

// TagUUID derives a stable identifier for a tag archive.
func TagUUID(name string) uuid.UUID {
	return UUID("blog:tag:" + strings.ToLower(strings.TrimSpace(name)))
}
