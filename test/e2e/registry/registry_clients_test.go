package registry_test

import (
	"testing"

	"github.com/relayops/clientreg/pkg/registrysdk"
	"github.com/stretchr/testify/require"
)

// TestClientLifecycle walks the full register/fetch/update/delete flow
// against a running container.
func TestClientLifecycle(t *testing.T) {
	baseURL, cleanup := setupRegistryContainer(t, nil)
	defer cleanup()

	sdk := registrysdk.NewClient(baseURL)
	ctx := t.Context()

	// Fresh instance starts empty
	all, err := sdk.ListClients(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	created, err := sdk.CreateClient(ctx, registrysdk.ClientRequest{
		Name:         "Acme",
		DownloadLink: "https://x.test/a.zip",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", created.Name)
	require.Equal(t, "https://x.test/a.zip", created.DownloadLink)

	got, err := sdk.GetClient(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ID)
	require.Equal(t, "Acme", got.Name)

	updated, err := sdk.UpdateClient(ctx, "Acme", registrysdk.ClientRequest{
		Name:         "Acme Corp",
		DownloadLink: "https://x.test/b.zip",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", updated.Name)

	// The registration key survives the rename
	got, err = sdk.GetClient(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ID)
	require.Equal(t, "Acme Corp", got.Name)
	require.Equal(t, "https://x.test/b.zip", got.DownloadLink)

	require.NoError(t, sdk.DeleteClient(ctx, "Acme"))

	_, err = sdk.GetClient(ctx, "Acme")
	require.True(t, registrysdk.IsNotFound(err), "expected not found, got %v", err)
}

// TestClientErrorTaxonomy verifies the error responses the admin UI depends on.
func TestClientErrorTaxonomy(t *testing.T) {
	baseURL, cleanup := setupRegistryContainer(t, nil)
	defer cleanup()

	sdk := registrysdk.NewClient(baseURL)
	ctx := t.Context()

	_, err := sdk.CreateClient(ctx, registrysdk.ClientRequest{
		Name:         "Acme",
		DownloadLink: "https://x.test/a.zip",
	})
	require.NoError(t, err)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := sdk.CreateClient(ctx, registrysdk.ClientRequest{
			Name:         "Acme",
			DownloadLink: "https://x.test/other.zip",
		})
		require.True(t, registrysdk.IsConflict(err), "expected conflict, got %v", err)
	})

	t.Run("invalid download link rejected", func(t *testing.T) {
		_, err := sdk.CreateClient(ctx, registrysdk.ClientRequest{
			Name:         "Beta",
			DownloadLink: "not-a-url",
		})
		var apiErr *registrysdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("update of unknown client is not found", func(t *testing.T) {
		_, err := sdk.UpdateClient(ctx, "ghost", registrysdk.ClientRequest{
			Name:         "Ghost",
			DownloadLink: "https://x.test/g.zip",
		})
		require.True(t, registrysdk.IsNotFound(err), "expected not found, got %v", err)
	})

	t.Run("delete of unknown client is not found", func(t *testing.T) {
		err := sdk.DeleteClient(ctx, "ghost")
		require.True(t, registrysdk.IsNotFound(err), "expected not found, got %v", err)
	})
}

// TestSqliteDriver runs the lifecycle against the sqlite-backed store.
func TestSqliteDriver(t *testing.T) {
	baseURL, cleanup := setupRegistryContainer(t, map[string]string{
		"REGISTRY_STORAGE_DRIVER": "sqlite",
		"REGISTRY_DATABASE_FILE":  "/tmp/registry.db",
	})
	defer cleanup()

	sdk := registrysdk.NewClient(baseURL)
	ctx := t.Context()

	created, err := sdk.CreateClient(ctx, registrysdk.ClientRequest{
		Name:         "Acme",
		DownloadLink: "https://x.test/a.zip",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", created.Name)

	all, err := sdk.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, sdk.DeleteClient(ctx, "Acme"))
}

// TestAPIPrefix verifies the configured routing prefix is honored.
func TestAPIPrefix(t *testing.T) {
	baseURL, cleanup := setupRegistryContainer(t, map[string]string{
		"REGISTRY_API_PREFIX": "/api",
	})
	defer cleanup()

	sdk := registrysdk.NewClient(baseURL + "/api")
	ctx := t.Context()

	health, err := sdk.Livez(ctx)
	assertHealthy(t, health, err)

	_, err = sdk.CreateClient(ctx, registrysdk.ClientRequest{
		Name:         "Acme",
		DownloadLink: "https://x.test/a.zip",
	})
	require.NoError(t, err)

	got, err := sdk.GetClient(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ID)
}
