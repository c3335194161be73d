package markdown

import (
	"strings"
	"testing"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

func TestGoldmarkParserRendersPostBody(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Strategy Pattern\n\nUse ~~inheritance~~ composition.\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<h1 id=\"strategy-pattern\">Strategy Pattern</h1>") {
		t.Fatalf("missing heading: %s", out)
	}
	if !strings.Contains(out, "<del>inheritance</del>") {
		t.Fatalf("expected GFM strikethrough: %s", out)
	}
}

func TestGoldmarkParserAllowsRawHTMLByDefault(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("<script src=\"https://gist.github.com/example.js\"></script>\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<script") {
		t.Fatalf("expected raw HTML passthrough, got %s", html)
	}
}

func TestGoldmarkParserSafeModeEscapesRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("<script>alert(1)</script>\n"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected raw HTML to be suppressed, got %s", html)
	}
}

func TestGoldmarkParserUnknownExtensionsIgnored(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Extensions: []string{"table", "bogus"}})

	if _, err := parser.Parse([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n")); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}
