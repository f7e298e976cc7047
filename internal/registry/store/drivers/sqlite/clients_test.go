package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/relayops/clientreg/internal/registry/domain"
	"github.com/relayops/clientreg/internal/registry/store"
	"github.com/relayops/clientreg/internal/registry/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "registry.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestSQLitePutGetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Clients().PutClient(ctx, domain.Client{
		ID: "Acme", Name: "Acme", DownloadLink: "https://x.test/a.zip",
	}))

	got, err := st.Clients().GetClient(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ID)
	require.Equal(t, "https://x.test/a.zip", got.DownloadLink)
	require.False(t, got.CreatedAt.IsZero())

	require.NoError(t, st.Clients().DeleteClient(ctx, "Acme"))
	_, err = st.Clients().GetClient(ctx, "Acme")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, st.Clients().DeleteClient(ctx, "Acme"), store.ErrNotFound)
}

func TestSQLiteUpsertPreservesKeyAndCreatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Clients().PutClient(ctx, domain.Client{
		ID: "Acme", Name: "Acme", DownloadLink: "https://x.test/a.zip",
	}))
	created, err := st.Clients().GetClient(ctx, "Acme")
	require.NoError(t, err)

	require.NoError(t, st.Clients().PutClient(ctx, domain.Client{
		ID: "Acme", Name: "Acme Corp", DownloadLink: "https://x.test/b.zip",
		CreatedAt: created.CreatedAt,
	}))

	got, err := st.Clients().GetClient(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.Name)
	require.Equal(t, "https://x.test/b.zip", got.DownloadLink)
	require.Equal(t, created.CreatedAt.Unix(), got.CreatedAt.Unix())

	all, err := st.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSQLiteListInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	for _, id := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, st.Clients().PutClient(ctx, domain.Client{
			ID: id, Name: id, DownloadLink: "https://x.test/" + id,
		}))
	}

	all, err := st.Clients().ListClients(ctx)
	require.NoError(t, err)

	ids := make([]string, len(all))
	for i, c := range all {
		ids[i] = c.ID
	}
	require.Equal(t, []string{"zulu", "alpha", "mike"}, ids)
}

func TestSQLiteWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	wantErr := store.ErrAlreadyExists
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().PutClient(ctx, domain.Client{
			ID: "Acme", Name: "Acme", DownloadLink: "https://x.test/a.zip",
		}); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	ok, err := st.Clients().ClientExists(ctx, "Acme")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteWithTxCommits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		ok, err := tx.Clients().ClientExists(ctx, "Acme")
		if err != nil {
			return err
		}
		require.False(t, ok)
		return tx.Clients().PutClient(ctx, domain.Client{
			ID: "Acme", Name: "Acme", DownloadLink: "https://x.test/a.zip",
		})
	})
	require.NoError(t, err)

	ok, err := st.Clients().ClientExists(ctx, "Acme")
	require.NoError(t, err)
	require.True(t, ok)
}
