package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/relayops/clientreg/internal/registry/store"
)

// txStore holds the parent store's write lock until Commit or Rollback.
type txStore struct {
	s      *Store
	unlock sync.Once
}

func (t *txStore) Commit() error {
	t.unlock.Do(t.s.mu.Unlock)
	return nil
}

func (t *txStore) Rollback() error {
	// Mutations were applied in place, there is nothing to undo.
	t.unlock.Do(t.s.mu.Unlock)
	return nil
}

func (t *txStore) Clients() store.Clients { return &clientsRepo{s: t.s, locked: true} }

func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Close() error { return nil } // caller will commit/rollback; outer store stays open

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported
	return sql.ErrTxDone
}
