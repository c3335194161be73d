// Package lint checks the post corpus against the conventions every source
// file is expected to follow: the YYYY-MM-DD-slug.markdown naming scheme,
// well-formed front matter, parseable dates, unique permalinks, and known
// layouts.
package lint

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/markdown"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
	blogpost "github.com/code-bluecomment/code-bluecomment.github.io/post"
)

// Severity grades lint findings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule identifiers, stable for tooling that filters output.
const (
	RuleFilenameConvention = "filename-convention"
	RuleFrontMatterParse   = "front-matter-parse"
	RuleTitleRequired      = "title-required"
	RuleDateRequired       = "date-required"
	RuleDateMatchesFile    = "date-matches-filename"
	RulePermalinkRequired  = "permalink-required"
	RulePermalinkUnique    = "permalink-unique"
	RulePermalinkValid     = "permalink-valid"
	RuleLayoutKnown        = "layout-known"
)

// Issue is a single lint finding tied to a source file.
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: [%s] %s", i.Severity, i.Path, i.Rule, i.Message)
}

// Report aggregates lint findings across a corpus run.
type Report struct {
	Checked int     `json:"checked"`
	Issues  []Issue `json:"issues"`
}

// HasErrors reports whether any finding has error severity.
func (r *Report) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity findings.
func (r *Report) Errors() []Issue {
	if r == nil {
		return nil
	}
	out := []Issue{}
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// Config controls which checks run and how strict they are.
type Config struct {
	// Pattern limits linted files (defaults to "*.markdown").
	Pattern string
	// Recursive controls directory traversal.
	Recursive bool
	// KnownLayouts lists the layouts the site templates provide. Empty
	// disables the layout check.
	KnownLayouts []string
	// DateMismatchIsError promotes filename/front matter date mismatches
	// from warnings to errors.
	DateMismatchIsError bool
	Logger              interfaces.Logger
}

// Linter walks a corpus and applies the configured checks.
type Linter struct {
	cfg     Config
	layouts map[string]struct{}
	logger  interfaces.Logger
}

// New constructs a Linter.
func New(cfg Config) *Linter {
	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = "*.markdown"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	layouts := make(map[string]struct{}, len(cfg.KnownLayouts))
	for _, layout := range cfg.KnownLayouts {
		layout = strings.ToLower(strings.TrimSpace(layout))
		if layout != "" {
			layouts[layout] = struct{}{}
		}
	}
	return &Linter{cfg: cfg, layouts: layouts, logger: logger}
}

// LintFS lints every matching file under root in the supplied filesystem.
func (l *Linter) LintFS(ctx context.Context, fsys fs.FS, root string) (*Report, error) {
	if root == "" {
		root = "."
	}

	report := &Report{Issues: []Issue{}}
	permalinks := map[string]string{}

	var paths []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !l.cfg.Recursive && filepath.Clean(path) != filepath.Clean(root) {
				return fs.SkipDir
			}
			return nil
		}
		if match, _ := filepath.Match(l.cfg.Pattern, filepath.Base(path)); !match {
			return nil
		}
		paths = append(paths, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lint walk %s: %w", root, err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		report.Checked++
		l.lintFile(fsys, path, permalinks, report)
	}

	l.logger.Info("lint.completed", "checked", report.Checked, "issues", len(report.Issues))
	return report, nil
}

func (l *Linter) lintFile(fsys fs.FS, path string, permalinks map[string]string, report *Report) {
	addIssue := func(rule string, severity Severity, format string, args ...any) {
		report.Issues = append(report.Issues, Issue{
			Rule:     rule,
			Severity: severity,
			Path:     path,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	name, nameErr := markdown.ParseFilename(path)
	if nameErr != nil {
		addIssue(RuleFilenameConvention, SeverityError, "%v", nameErr)
	}

	source, err := fs.ReadFile(fsys, path)
	if err != nil {
		addIssue(RuleFrontMatterParse, SeverityError, "read failed: %v", err)
		return
	}

	fm, _, err := markdown.ParseFrontMatter(source)
	if err != nil {
		addIssue(RuleFrontMatterParse, SeverityError, "%v", err)
		return
	}

	if strings.TrimSpace(fm.Title) == "" {
		addIssue(RuleTitleRequired, SeverityError, "front matter is missing a title")
	}

	if fm.Date.IsZero() && nameErr != nil {
		addIssue(RuleDateRequired, SeverityError, "no date in front matter or filename")
	}

	if !fm.Date.IsZero() && nameErr == nil {
		fy, fmn, fd := fm.Date.UTC().Date()
		ny, nmn, nd := name.Date.Date()
		if fy != ny || fmn != nmn || fd != nd {
			severity := SeverityWarning
			if l.cfg.DateMismatchIsError {
				severity = SeverityError
			}
			addIssue(RuleDateMatchesFile, severity,
				"front matter date %s disagrees with filename date %s",
				fm.Date.Format("2006-01-02"), name.Date.Format("2006-01-02"))
		}
	}

	l.lintPermalink(path, fm, name, nameErr == nil, permalinks, addIssue)

	if len(l.layouts) > 0 && strings.TrimSpace(fm.Layout) != "" {
		if _, ok := l.layouts[strings.ToLower(strings.TrimSpace(fm.Layout))]; !ok {
			addIssue(RuleLayoutKnown, SeverityWarning, "%v: %q", blogpost.ErrLayoutUnknown, fm.Layout)
		}
	}
}

func (l *Linter) lintPermalink(path string, fm interfaces.FrontMatter, name markdown.FileName, hasName bool, permalinks map[string]string, addIssue func(string, Severity, string, ...any)) {
	permalink := strings.TrimSpace(fm.Permalink)
	if permalink == "" {
		if !hasName {
			addIssue(RulePermalinkValid, SeverityError, "no permalink and no filename to derive one from")
			return
		}
		permalink = markdown.DateRoute(name.Date, name.Slug)
		addIssue(RulePermalinkRequired, SeverityWarning,
			"front matter is missing a permalink; publishing falls back to %s", permalink)
	} else {
		if !strings.HasPrefix(permalink, "/") {
			addIssue(RulePermalinkValid, SeverityError, "permalink %q must start with /", permalink)
		}
		if strings.ContainsAny(permalink, " \t") {
			addIssue(RulePermalinkValid, SeverityError, "permalink %q contains whitespace", permalink)
		}
	}

	if prior, ok := permalinks[permalink]; ok {
		addIssue(RulePermalinkUnique, SeverityError, "permalink %q already used by %s", permalink, prior)
		return
	}
	permalinks[permalink] = path
}
