package memory

import (
	"context"
	"time"

	"github.com/relayops/clientreg/internal/registry/domain"
	"github.com/relayops/clientreg/internal/registry/store"
)

// clientsRepo serves the Clients interface against the shared map. The
// locked flag is set on tx-scoped repos, where the write lock is already
// held for the whole transaction.
type clientsRepo struct {
	s      *Store
	locked bool
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	if !r.locked {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.listClients(), nil
}

func (r *clientsRepo) GetClient(ctx context.Context, key string) (domain.Client, error) {
	if !r.locked {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}

	c, ok := r.s.getClient(key)
	if !ok {
		return domain.Client{}, store.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) ClientExists(ctx context.Context, key string) (bool, error) {
	if !r.locked {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}

	_, ok := r.s.getClient(key)
	return ok, nil
}

func (r *clientsRepo) PutClient(ctx context.Context, c domain.Client) error {
	if !r.locked {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}

	now := time.Now().UTC()
	if existing, ok := r.s.getClient(c.ID); ok {
		c.CreatedAt = existing.CreatedAt
	} else if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	r.s.putClient(c)
	return nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, key string) error {
	if !r.locked {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}

	if !r.s.deleteClient(key) {
		return store.ErrNotFound
	}
	return nil
}
