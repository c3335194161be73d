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
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("markdown sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("markdown-sync", flag.ExitOnError)
	contentDir := fs.String("content-dir", "_posts", "Path to the post corpus root")
	pattern := fs.String("pattern", "*.markdown", "Glob pattern applied when discovering post files")
	recursive := fs.Bool("recursive", false, "Walk the corpus directory recursively")
	directory := fs.String("directory", ".", "Directory to sync, relative to the corpus root")
	author := fs.String("author", "", "Author identifier recorded on created posts")
	layout := fs.String("layout", "", "Layout applied when front matter omits the layout key")
	dsn := fs.String("dsn", "", "Database DSN for persisting posts (empty keeps an in-memory store)")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting posts")
	deleteOrphaned := fs.Bool("delete-orphaned", false, "Soft delete posts whose source files disappeared")
	updateExisting := fs.Bool("update-existing", true, "Overwrite stored posts when source files changed")

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

	handler := markdowncmd.NewSyncPostsHandler(module.Service, module.Logger, markdowncmd.FeatureGates{
		MarkdownEnabled: func() bool { return true },
	})
	cmd := markdowncmd.SyncPostsCommand{
		Directory:      *directory,
		AuthorID:       *author,
		DefaultLayout:  *layout,
		DryRun:         *dryRun,
		DeleteOrphaned: *deleteOrphaned,
		UpdateExisting: *updateExisting,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "markdown sync command executed successfully")

	return nil
}
