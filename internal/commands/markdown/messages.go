package markdowncmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	importPostsMessageType = "blog.markdown.import_posts"
	syncPostsMessageType   = "blog.markdown.sync_posts"
)

// ImportPostsCommand triggers a filesystem walk for post sources under the
// provided Directory. The command mirrors markdown.Service ImportDirectory
// semantics, allowing callers to supply import options that map directly onto
// interfaces.ImportOptions.
type ImportPostsCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load post files from.
	Directory string `json:"directory"`
	// AuthorID sets the author reference recorded on created posts.
	AuthorID string `json:"author_id,omitempty"`
	// DefaultLayout applies when a post's front matter omits the layout key.
	DefaultLayout string `json:"default_layout,omitempty"`
	// DryRun toggles preview mode to collect import diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportPostsCommand) Type() string { return importPostsMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.markdown.import_posts.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// SyncPostsCommand orchestrates a post sync run for the provided Directory,
// applying deletion or update flags consistent with interfaces.SyncOptions.
type SyncPostsCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load post files from.
	Directory string `json:"directory"`
	// AuthorID sets the author reference recorded on created posts.
	AuthorID string `json:"author_id,omitempty"`
	// DefaultLayout applies when a post's front matter omits the layout key.
	DefaultLayout string `json:"default_layout,omitempty"`
	// DryRun toggles preview mode to collect sync diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// DeleteOrphaned soft-deletes posts whose source files disappeared.
	DeleteOrphaned bool `json:"delete_orphaned,omitempty"`
	// UpdateExisting overwrites stored posts when source files have changed.
	UpdateExisting bool `json:"update_existing,omitempty"`
}

// Type implements command.Message.
func (SyncPostsCommand) Type() string { return syncPostsMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SyncPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.markdown.sync_posts.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
