package interfaces

import (
	"context"

	"github.com/code-bluecomment/code-bluecomment.github.io/pkg/storage"
)

// StorageProvider preserves the single-import experience for callers wiring
// the module. Implementations should satisfy pkg/storage.Provider (and
// optional mix-ins) directly.
type StorageProvider = storage.Provider

// StorageReloadable mirrors storage.Reloadable for compatibility.
type StorageReloadable interface {
	Reload(ctx context.Context, cfg storage.Config) error
}

// Rows aliases the storage.Rows type.
type Rows = storage.Rows

// Result aliases the storage.Result type.
type Result = storage.Result

// Transaction aliases the storage.Transaction type.
type Transaction = storage.Transaction
