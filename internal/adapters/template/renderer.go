package template

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// Renderer is a layout renderer backed by html/template. Templates are loaded
// lazily from the base directory on first render; .html and .tmpl files are
// parsed into a single template set so layouts can reference shared partials
// by name.
type Renderer struct {
	fsys fs.FS

	mu      sync.Mutex
	parsed  bool
	tpl     *template.Template
	err     error
	filters map[string]func(input any, param any) (any, error)
	globals map[string]any
}

// NewRenderer loads layout templates from a directory on disk.
func NewRenderer(baseDir string) (*Renderer, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("inspect layout directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("layout path %q is not a directory", baseDir)
	}
	return NewFSRenderer(os.DirFS(baseDir)), nil
}

// NewFSRenderer loads layout templates from an fs.FS, which keeps tests and
// embedded layouts on the same code path.
func NewFSRenderer(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys:    fsys,
		filters: map[string]func(any, any) (any, error){},
		globals: map[string]any{},
	}
}

var _ interfaces.TemplateRenderer = (*Renderer)(nil)

func (r *Renderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *Renderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	tpl, err := r.ensureTemplates()
	if err != nil {
		return "", err
	}
	target := tpl.Lookup(name)
	if target == nil {
		// Template names are stored without directory prefixes when parsed
		// from nested paths, so fall back to the base name.
		target = tpl.Lookup(filepath.Base(name))
	}
	if target == nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	return execute(target, data, out...)
}

func (r *Renderer) RenderString(content string, data any, out ...io.Writer) (string, error) {
	r.mu.Lock()
	funcs := r.funcMap()
	r.mu.Unlock()

	tpl, err := template.New("inline").Funcs(funcs).Parse(content)
	if err != nil {
		return "", err
	}
	return execute(tpl, data, out...)
}

// RegisterFilter exposes fn to templates as a two argument function. Filters
// must be registered before the first render; the template set is parsed once.
func (r *Renderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("filter name is required")
	}
	if fn == nil {
		return fmt.Errorf("filter %q requires a function", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.parsed {
		return fmt.Errorf("filter %q registered after templates were parsed", name)
	}
	r.filters[name] = fn
	return nil
}

// GlobalContext merges data into the values the "global" template function
// resolves. Non-map data is rejected.
func (r *Renderer) GlobalContext(data any) error {
	values, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("global context must be a map, got %T", data)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range values {
		r.globals[key] = value
	}
	return nil
}

func (r *Renderer) ensureTemplates() (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.parsed {
		return r.tpl, r.err
	}
	r.parsed = true

	var files []string
	err := fs.WalkDir(r.fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".html" && ext != ".tmpl" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		r.err = err
		return nil, r.err
	}
	if len(files) == 0 {
		r.err = fmt.Errorf("no templates found")
		return nil, r.err
	}

	root := template.New("layouts").Funcs(r.funcMap())
	for _, file := range files {
		content, err := fs.ReadFile(r.fsys, file)
		if err != nil {
			r.err = fmt.Errorf("read template %s: %w", file, err)
			return nil, r.err
		}
		// Register each file under its slash path and its base name so
		// layouts/post.html resolves either way.
		if _, err := root.New(filepath.ToSlash(file)).Parse(string(content)); err != nil {
			r.err = fmt.Errorf("parse template %s: %w", file, err)
			return nil, r.err
		}
		base := filepath.Base(file)
		if base != filepath.ToSlash(file) && root.Lookup(base) == nil {
			if _, err := root.New(base).Parse(string(content)); err != nil {
				r.err = fmt.Errorf("parse template %s: %w", file, err)
				return nil, r.err
			}
		}
	}
	r.tpl = root
	return r.tpl, nil
}

func (r *Renderer) funcMap() template.FuncMap {
	funcs := template.FuncMap{
		"safeHTML": func(value any) template.HTML { return toHTML(value) },
		"global": func(key string) any {
			return r.globals[key]
		},
	}
	for name, fn := range r.filters {
		filter := fn
		funcs[name] = func(input any, params ...any) (any, error) {
			var param any
			if len(params) > 0 {
				param = params[0]
			}
			return filter(input, param)
		}
	}
	return funcs
}

func execute(tpl *template.Template, data any, out ...io.Writer) (string, error) {
	var writer io.Writer
	var buffer *bytes.Buffer
	if len(out) > 0 && out[0] != nil {
		writer = out[0]
	} else {
		buffer = &bytes.Buffer{}
		writer = buffer
	}
	if err := tpl.Execute(writer, data); err != nil {
		return "", err
	}
	if buffer != nil {
		return buffer.String(), nil
	}
	return "", nil
}

func toHTML(value any) template.HTML {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case template.HTML:
		return v
	case string:
		return template.HTML(v)
	default:
		return template.HTML(fmt.Sprint(v))
	}
}
