package store

import (
	"context"
	"errors"

	"github.com/relayops/clientreg/internal/registry/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Clients() Clients

	// ApplyMigrations brings the backing schema up to date. Drivers without
	// a schema treat this as a no-op.
	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., the
	// check-then-write on registration). The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// ListClients returns all clients in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// GetClient fetches a client by its registry key.
	GetClient(ctx context.Context, key string) (domain.Client, error)

	// ClientExists reports whether a client is registered under key.
	ClientExists(ctx context.Context, key string) (bool, error)

	// PutClient inserts or overwrites the record at c.ID unconditionally.
	// Callers wanting create-only semantics must check existence first,
	// inside a transaction.
	PutClient(ctx context.Context, c domain.Client) error

	// DeleteClient removes the entry under key, returning ErrNotFound if
	// nothing was registered there.
	DeleteClient(ctx context.Context, key string) error
}
