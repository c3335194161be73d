package lintcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const lintCorpusMessageType = "blog.lint.corpus"

// LintCorpusCommand runs content checks over the post sources under Directory.
type LintCorpusCommand struct {
	// Directory selects the filesystem path holding the post corpus.
	Directory string `json:"directory"`
	// Recursive controls whether nested directories are linted too.
	Recursive bool `json:"recursive,omitempty"`
	// Strict promotes date mismatch warnings to errors.
	Strict bool `json:"strict,omitempty"`
}

// Type implements command.Message.
func (LintCorpusCommand) Type() string { return lintCorpusMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd LintCorpusCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.lint.corpus.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
