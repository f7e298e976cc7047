// Package memory implements the registry store as a process-local map.
// This is the default driver: state is empty on first use and discarded when
// the process exits. In a horizontally-scaled deployment every instance holds
// its own independent registry; nothing is shared between them.
package memory

import (
	"context"
	"sync"

	"github.com/relayops/clientreg/internal/registry/domain"
	"github.com/relayops/clientreg/internal/registry/store"
)

var _ store.Store = (*Store)(nil)

// Store keeps client records in a map keyed by registry key, plus a slice of
// keys preserving insertion order for listing. net/http serves requests
// concurrently, so access is guarded by an RWMutex.
type Store struct {
	mu      sync.RWMutex
	clients map[string]domain.Client
	order   []string
}

func NewStore() *Store {
	return &Store{
		clients: make(map[string]domain.Client),
	}
}

func (s *Store) Clients() store.Clients { return &clientsRepo{s: s} }

func (s *Store) ApplyMigrations() error { return nil } // no schema

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return nil }

// Tx takes the write lock for the duration of the transaction, making
// check-then-write sequences atomic. Mutations apply immediately; Rollback
// only releases the lock, so callers must do all validation before writing.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	s.mu.Lock()
	return &txStore{s: s}, nil
}

// WithTx executes fn while holding the write lock, releasing it on return.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// Unlocked primitives, callers must hold the appropriate lock.

func (s *Store) listClients() []domain.Client {
	out := make([]domain.Client, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.clients[key])
	}
	return out
}

func (s *Store) getClient(key string) (domain.Client, bool) {
	c, ok := s.clients[key]
	return c, ok
}

func (s *Store) putClient(c domain.Client) {
	if _, ok := s.clients[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.clients[c.ID] = c
}

func (s *Store) deleteClient(key string) bool {
	if _, ok := s.clients[key]; !ok {
		return false
	}
	delete(s.clients, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
