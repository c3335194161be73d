package storage

import "context"

// Provider encapsulates the operations the blog repositories and the static
// site writer need from a backing store. SQL-backed implementations forward
// to database/sql; the filesystem adapter interprets the query string as an
// operation code.
type Provider interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) (Result, error)
	Transaction(ctx context.Context, fn func(tx Transaction) error) error
}

// Reloadable providers can apply a new configuration at runtime.
// Implementations that do not support reloads may omit this interface; the
// container keeps using the existing provider.
type Reloadable interface {
	Reload(ctx context.Context, cfg Config) error
}

// CapabilityReporter exposes optional provider features so callers can make
// runtime decisions.
type CapabilityReporter interface {
	Capabilities() Capabilities
}

// Config captures the runtime configuration for a storage provider.
type Config struct {
	Name     string
	Driver   string
	DSN      string
	ReadOnly bool
	Options  map[string]any
}

// Capabilities documents optional behaviours supported by a provider.
type Capabilities struct {
	SupportsReload bool
	Metadata       map[string]any
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

type Result interface {
	RowsAffected() (int64, error)
	LastInsertId() (int64, error)
}

type Transaction interface {
	Provider
	Commit() error
	Rollback() error
}
