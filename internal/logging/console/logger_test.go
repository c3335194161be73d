package console

import (
	"strings"
	"testing"
	"time"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/logging"
)

type captureWriter struct {
	entries []string
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.entries = append(w.entries, string(p))
	return len(p), nil
}

func fixedClock() time.Time {
	return time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC)
}

func TestLoggerWritesFormattedEntry(t *testing.T) {
	writer := &captureWriter{}
	provider := NewProvider(Options{Writer: writer, TimeFunc: fixedClock})

	logger := provider.GetLogger("blog.markdown")
	logger.Info("import.completed", "created", 3, "skipped", 1)

	if len(writer.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(writer.entries))
	}
	entry := writer.entries[0]
	for _, want := range []string{"INFO", "import.completed", "created=3", "skipped=1", "logger=blog.markdown"} {
		if !strings.Contains(entry, want) {
			t.Fatalf("entry %q missing %q", entry, want)
		}
	}
}

func TestLoggerHonoursMinLevel(t *testing.T) {
	writer := &captureWriter{}
	min := LevelWarn
	provider := NewProvider(Options{Writer: writer, TimeFunc: fixedClock, MinLevel: &min})

	logger := provider.GetLogger("blog")
	logger.Debug("dropped")
	logger.Error("kept")

	if len(writer.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(writer.entries))
	}
	if !strings.Contains(writer.entries[0], "kept") {
		t.Fatalf("unexpected entry %q", writer.entries[0])
	}
}

func TestLoggerMergesContextFields(t *testing.T) {
	writer := &captureWriter{}
	provider := NewProvider(Options{Writer: writer, TimeFunc: fixedClock})

	ctx := logging.ContextWithFields(t.Context(), map[string]any{"request": "abc"})
	logger := provider.GetLogger("blog").WithContext(ctx)
	logger.Info("hello")

	if len(writer.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(writer.entries))
	}
	if !strings.Contains(writer.entries[0], "request=abc") {
		t.Fatalf("entry %q missing context field", writer.entries[0])
	}
}
