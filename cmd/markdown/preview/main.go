package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/code-bluecomment/code-bluecomment.github.io/cmd/markdown/internal/bootstrap"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "_posts", "Path to the post corpus root")
		pattern    = flag.String("pattern", "*.markdown", "Glob pattern applied when discovering post files")
		filePath   = flag.String("file", "", "Post file to preview (relative to the corpus root)")
		renderHTML = flag.Bool("render-html", true, "Render the post body into HTML as part of the preview")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	opts := bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	if module == nil || module.Service == nil {
		log.Fatalf("markdown service not configured; ensure Features.Markdown is enabled")
	}

	ctx := context.Background()

	doc, err := module.Service.Load(ctx, *filePath, interfaces.LoadOptions{})
	if err != nil {
		log.Fatalf("load post document: %v", err)
	}

	if *renderHTML {
		if _, err := module.Service.RenderDocument(ctx, doc, interfaces.ParseOptions{}); err != nil {
			log.Fatalf("render markdown: %v", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nPermalink: %s\nChecksum: %x\n\n", doc.FilePath, doc.FrontMatter.Permalink, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}
}
