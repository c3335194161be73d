package noop_test

import (
	"testing"

	"github.com/code-bluecomment/code-bluecomment.github.io/internal/adapters/noop"
	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

func TestAdaptersImplementInterfaces(t *testing.T) {
	var (
		_ interfaces.TemplateRenderer = noop.Template()
		_ interfaces.ActivitySink     = noop.Activity()
	)
}
