package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/interfaces"
)

// Operation codes the static site writer routes through Exec/Query. The
// filesystem provider interprets them instead of SQL.
const (
	OpEnsureDir = "static.ensure_dir"
	OpWrite     = "static.write"
	OpRead      = "static.read"
	OpRemove    = "static.remove"
)

var errUnknownOperation = errors.New("storage: unknown filesystem operation")

// FilesystemProvider persists static artifacts below a root directory. Paths
// in operations are interpreted relative to the root and sanitised so writes
// cannot escape it.
type FilesystemProvider struct {
	root string
}

func NewFilesystemProvider(root string) (*FilesystemProvider, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("storage: filesystem root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root %s: %w", abs, err)
	}
	return &FilesystemProvider{root: abs}, nil
}

// Root returns the absolute root directory.
func (p *FilesystemProvider) Root() string { return p.root }

func (p *FilesystemProvider) Exec(ctx context.Context, op string, args ...any) (interfaces.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch op {
	case OpEnsureDir:
		path, err := p.resolve(stringArg(args, 0))
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("storage: ensure dir %s: %w", path, err)
		}
		return fsResult{}, nil
	case OpWrite:
		return p.write(args)
	case OpRemove:
		path, err := p.resolve(stringArg(args, 0))
		if err != nil {
			return nil, err
		}
		if err := os.RemoveAll(path); err != nil {
			return nil, fmt.Errorf("storage: remove %s: %w", path, err)
		}
		return fsResult{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownOperation, op)
	}
}

func (p *FilesystemProvider) Query(ctx context.Context, op string, args ...any) (interfaces.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if op != OpRead {
		return nil, fmt.Errorf("%w: %q", errUnknownOperation, op)
	}
	path, err := p.resolve(stringArg(args, 0))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileRows{}, nil
		}
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return &fileRows{data: data, present: true}, nil
}

// Transaction runs fn against the provider itself; filesystem writes are not
// transactional.
func (p *FilesystemProvider) Transaction(_ context.Context, fn func(tx interfaces.Transaction) error) error {
	if fn == nil {
		return nil
	}
	return fn(fsTx{provider: p})
}

func (p *FilesystemProvider) write(args []any) (interfaces.Result, error) {
	if len(args) < 2 {
		return nil, errors.New("storage: write requires path and content")
	}
	path, err := p.resolve(stringArg(args, 0))
	if err != nil {
		return nil, err
	}
	reader, ok := args[1].(io.Reader)
	if !ok {
		return nil, errors.New("storage: write content must be an io.Reader")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: prepare dir for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", path, err)
	}
	written, err := io.Copy(file, reader)
	closeErr := file.Close()
	if err != nil {
		return nil, fmt.Errorf("storage: write %s: %w", path, err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("storage: close %s: %w", path, closeErr)
	}
	return fsResult{affected: written}, nil
}

func (p *FilesystemProvider) resolve(rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", errors.New("storage: path is required")
	}
	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimLeft(rel, "/")))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("storage: path %q escapes root", rel)
	}
	return filepath.Join(p.root, cleaned), nil
}

func stringArg(args []any, index int) string {
	if index >= len(args) {
		return ""
	}
	value, _ := args[index].(string)
	return value
}

type fsResult struct {
	affected int64
}

func (r fsResult) RowsAffected() (int64, error) { return r.affected, nil }
func (fsResult) LastInsertId() (int64, error)   { return 0, nil }

type fileRows struct {
	data    []byte
	present bool
	done    bool
}

func (r *fileRows) Next() bool {
	if !r.present || r.done {
		return false
	}
	r.done = true
	return true
}

func (r *fileRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return errors.New("storage: expected single scan destination")
	}
	target, ok := dest[0].(*[]byte)
	if !ok {
		return errors.New("storage: scan destination must be *[]byte")
	}
	*target = append([]byte(nil), r.data...)
	return nil
}

func (r *fileRows) Close() error { return nil }

type fsTx struct {
	provider *FilesystemProvider
}

func (t fsTx) Query(ctx context.Context, op string, args ...any) (interfaces.Rows, error) {
	return t.provider.Query(ctx, op, args...)
}

func (t fsTx) Exec(ctx context.Context, op string, args ...any) (interfaces.Result, error) {
	return t.provider.Exec(ctx, op, args...)
}

func (t fsTx) Transaction(context.Context, func(interfaces.Transaction) error) error {
	return errors.New("storage: nested transactions not supported")
}

func (fsTx) Commit() error   { return nil }
func (fsTx) Rollback() error { return nil }
