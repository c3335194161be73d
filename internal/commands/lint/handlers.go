package lintcmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	command "github.com/goliatone/go-command"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/commands"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/lint"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

const lintOperation = "lint.corpus"

var _ command.Commander[LintCorpusCommand] = (*LintCorpusHandler)(nil)

// HandlerConfig wires the lint handler's collaborators. Filesystem lets tests
// substitute an in-memory corpus for the default os.DirFS view.
type HandlerConfig struct {
	Pattern      string
	KnownLayouts []string
	Logger       interfaces.Logger
	Filesystem   func(dir string) fs.FS
	// OnReport receives every completed report, including clean runs.
	OnReport func(report *lint.Report)
}

// LintCorpusHandler executes content checks over a post corpus directory.
type LintCorpusHandler struct {
	inner *commands.Handler[LintCorpusCommand]
}

// NewLintCorpusHandler creates a handler bound to the supplied configuration.
func NewLintCorpusHandler(cfg HandlerConfig, opts ...commands.HandlerOption[LintCorpusCommand]) *LintCorpusHandler {
	baseLogger := commands.EnsureLogger(cfg.Logger)
	fsFactory := cfg.Filesystem
	if fsFactory == nil {
		fsFactory = func(dir string) fs.FS { return os.DirFS(dir) }
	}

	exec := func(ctx context.Context, msg LintCorpusCommand) error {
		linter := lint.New(lint.Config{
			Pattern:             cfg.Pattern,
			Recursive:           msg.Recursive,
			KnownLayouts:        cfg.KnownLayouts,
			DateMismatchIsError: msg.Strict,
			Logger:              baseLogger,
		})

		report, err := linter.LintFS(ctx, fsFactory(msg.Directory), ".")
		if err != nil {
			return err
		}

		if cfg.OnReport != nil {
			cfg.OnReport(report)
		}

		for _, issue := range report.Issues {
			entry := logging.WithFields(baseLogger, map[string]any{
				"rule": issue.Rule,
				"path": issue.Path,
			})
			if issue.Severity == lint.SeverityError {
				entry.Error("lint.issue", "message", issue.Message)
			} else {
				entry.Warn("lint.issue", "message", issue.Message)
			}
		}

		if report.HasErrors() {
			return fmt.Errorf("lint %s: %d error(s) across %d file(s)", msg.Directory, len(report.Errors()), report.Checked)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[LintCorpusCommand]{
		commands.WithLogger[LintCorpusCommand](baseLogger),
		commands.WithOperation[LintCorpusCommand](lintOperation),
		commands.WithMessageFields(func(msg LintCorpusCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Recursive {
				fields["recursive"] = true
			}
			if msg.Strict {
				fields["strict"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[LintCorpusCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LintCorpusHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[LintCorpusCommand].
func (h *LintCorpusHandler) Execute(ctx context.Context, msg LintCorpusCommand) error {
	return h.inner.Execute(ctx, msg)
}
