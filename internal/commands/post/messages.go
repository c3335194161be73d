package postcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	publishPostMessageType   = "blog.posts.publish"
	unpublishPostMessageType = "blog.posts.unpublish"
)

// PublishPostCommand flips a stored post to published, stamping its publish time.
type PublishPostCommand struct {
	// Permalink identifies the post to publish.
	Permalink string `json:"permalink"`
}

// Type implements command.Message.
func (PublishPostCommand) Type() string { return publishPostMessageType }

// Validate ensures a permalink is present before handlers execute.
func (cmd PublishPostCommand) Validate() error {
	return validatePermalink(&cmd, &cmd.Permalink, "blog.posts.publish.permalink_required")
}

// UnpublishPostCommand hides a stored post without deleting it.
type UnpublishPostCommand struct {
	// Permalink identifies the post to unpublish.
	Permalink string `json:"permalink"`
}

// Type implements command.Message.
func (UnpublishPostCommand) Type() string { return unpublishPostMessageType }

// Validate ensures a permalink is present before handlers execute.
func (cmd UnpublishPostCommand) Validate() error {
	return validatePermalink(&cmd, &cmd.Permalink, "blog.posts.unpublish.permalink_required")
}

func validatePermalink(structPtr any, field *string, code string) error {
	return validation.ValidateStruct(structPtr,
		validation.Field(field, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError(code, "permalink is required")
			}
			return nil
		})),
	)
}
