package noop

import (
	"context"
	"io"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// Template returns a template renderer that bypasses rendering.
func Template() interfaces.TemplateRenderer {
	return templateAdapter{}
}

type templateAdapter struct{}

func (templateAdapter) Render(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (templateAdapter) RenderTemplate(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (templateAdapter) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (templateAdapter) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (templateAdapter) GlobalContext(any) error {
	return nil
}

// Activity returns a sink that drops every activity record.
func Activity() interfaces.ActivitySink {
	return activityAdapter{}
}

type activityAdapter struct{}

func (activityAdapter) Log(context.Context, interfaces.ActivityRecord) error {
	return nil
}
