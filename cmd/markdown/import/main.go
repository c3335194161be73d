package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/code-bluecomment/code-bluecomment.github.io/cmd/markdown/internal/bootstrap"
	markdowncmd "github.com/code-bluecomment/code-bluecomment.github.io/internal/commands/markdown"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("markdown import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("markdown-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "_posts", "Path to the post corpus root")
	pattern := fs.String("pattern", "*.markdown", "Glob pattern applied when discovering post files")
	recursive := fs.Bool("recursive", false, "Walk the corpus directory recursively")
	directory := fs.String("directory", ".", "Directory to import, relative to the corpus root")
	author := fs.String("author", "", "Author identifier recorded on imported posts")
	layout := fs.String("layout", "", "Layout applied when front matter omits the layout key")
	dsn := fs.String("dsn", "", "Database DSN for persisting posts (empty keeps an in-memory store)")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting posts")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  *recursive,
		DSN:        *dsn,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("markdown service not configured; ensure Features.Markdown is enabled")
	}

	handler := markdowncmd.NewImportPostsHandler(module.Service, module.Logger, markdowncmd.FeatureGates{
		MarkdownEnabled: func() bool { return true },
	})
	cmd := markdowncmd.ImportPostsCommand{
		Directory:     *directory,
		AuthorID:      *author,
		DefaultLayout: *layout,
		DryRun:        *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "markdown import command executed successfully")

	return nil
}
