package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/relayops/clientreg/internal/registry/domain"
	"github.com/relayops/clientreg/internal/registry/store"
	"github.com/relayops/clientreg/pkg/slogx"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientNameTaken     = errors.New("client name already exists")
	ErrInvalidDownloadLink = errors.New("download link is not a valid absolute URL")
)

type ClientService struct {
	Store store.Store
}

// List returns all registered clients in insertion order.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// Get returns the client registered under key.
func (s *ClientService) Get(ctx context.Context, key string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClient(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

// Register creates a new client. The registry key is the trimmed name, fixed
// for the record's lifetime. The check order is contractual: name collision
// is reported before an invalid download link.
func (s *ClientService) Register(ctx context.Context, name, downloadLink string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	client := domain.Client{
		ID:           name,
		Name:         name,
		DownloadLink: downloadLink,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Clients().ClientExists(ctx, client.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrClientNameTaken
		}

		if err := validateDownloadLink(downloadLink); err != nil {
			return err
		}

		return tx.Clients().PutClient(ctx, client)
	})
	if err != nil {
		if !errors.Is(err, ErrClientNameTaken) && !errors.Is(err, ErrInvalidDownloadLink) {
			l.Error("failed to register client", "error", err, "client_id", client.ID)
		}
		return domain.Client{}, err
	}

	l.Info("client registered", "client_id", client.ID)
	return client, nil
}

// Update mutates the record under key in place. Name and link may change;
// the key does not, even when the name does. Existence is checked before the
// download link is validated.
func (s *ClientService) Update(ctx context.Context, key, name, downloadLink string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Clients().GetClient(ctx, key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		if err := validateDownloadLink(downloadLink); err != nil {
			return err
		}

		updated = current
		updated.Name = name
		updated.DownloadLink = downloadLink
		return tx.Clients().PutClient(ctx, updated)
	})
	if err != nil {
		if !errors.Is(err, ErrClientNotFound) && !errors.Is(err, ErrInvalidDownloadLink) {
			l.Error("failed to update client", "error", err, "client_id", key)
		}
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", key, "name", name)
	return updated, nil
}

// Remove deletes the client registered under key.
func (s *ClientService) Remove(ctx context.Context, key string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.Clients().DeleteClient(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		l.Error("failed to delete client", "error", err, "client_id", key)
		return err
	}

	l.Info("client deleted", "client_id", key)
	return nil
}

// validateDownloadLink accepts only well-formed absolute URLs with a host,
// e.g. "https://x.test/a.zip". Relative paths and bare words are rejected.
func validateDownloadLink(link string) error {
	u, err := url.Parse(link)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidDownloadLink
	}
	return nil
}
