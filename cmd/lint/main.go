package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	lintcmd "github.com/code-bluecomment/code-bluecomment.github.io/internal/commands/lint"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/lint"
	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging/console"
)

var exitFunc = os.Exit

func main() {
	if err := runLint(os.Args[1:]); err != nil {
		log.Fatalf("lint: %v", err)
	}
}

func runLint(args []string) error {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	directory := fs.String("directory", "_posts", "Path to the post corpus root")
	pattern := fs.String("pattern", "*.markdown", "Glob pattern applied when discovering post files")
	recursive := fs.Bool("recursive", false, "Walk the corpus directory recursively")
	layouts := fs.String("layouts", "post,page", "Comma separated list of layouts the site templates provide")
	strict := fs.Bool("strict", false, "Promote filename/front matter date mismatches to errors")

	if err := fs.Parse(args); err != nil {
		return err
	}

	provider := console.NewProvider(console.Options{})

	var report *lint.Report
	handler := lintcmd.NewLintCorpusHandler(lintcmd.HandlerConfig{
		Pattern:      *pattern,
		KnownLayouts: splitList(*layouts),
		Logger:       provider.GetLogger("lint"),
		OnReport: func(r *lint.Report) {
			report = r
		},
	})

	err := handler.Execute(context.Background(), lintcmd.LintCorpusCommand{
		Directory: *directory,
		Recursive: *recursive,
		Strict:    *strict,
	})

	if report != nil {
		errorCount := len(report.Errors())
		fmt.Fprintf(os.Stdout, "checked %d file(s): %d error(s), %d warning(s)\n",
			report.Checked, errorCount, len(report.Issues)-errorCount)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
	return nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
