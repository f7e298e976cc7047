package sqlite

import (
	"context"
	"time"

	"github.com/relayops/clientreg/internal/registry/domain"
	"github.com/relayops/clientreg/internal/registry/store"
)

type clientsRepo struct {
	q *queries
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	return r.q.listClients(ctx)
}

func (r *clientsRepo) GetClient(ctx context.Context, key string) (domain.Client, error) {
	c, err := r.q.getClient(ctx, key)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ClientExists(ctx context.Context, key string) (bool, error) {
	return r.q.clientExists(ctx, key)
}

func (r *clientsRepo) PutClient(ctx context.Context, c domain.Client) error {
	return r.q.putClient(ctx, c, time.Now().UTC())
}

func (r *clientsRepo) DeleteClient(ctx context.Context, key string) error {
	deleted, err := r.q.deleteClient(ctx, key)
	if err != nil {
		return err
	}
	if !deleted {
		return store.ErrNotFound
	}
	return nil
}
