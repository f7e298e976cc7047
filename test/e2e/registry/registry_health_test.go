package registry_test

import (
	"testing"

	"github.com/relayops/clientreg/pkg/registrysdk"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupRegistryContainer(t, nil)
	defer cleanup()

	sdk := registrysdk.NewClient(baseURL)

	health, err := sdk.Livez(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check endpoint reports the
// backing store as healthy.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupRegistryContainer(t, nil)
	defer cleanup()

	sdk := registrysdk.NewClient(baseURL)

	health, err := sdk.Readyz(t.Context())
	assertHealthy(t, health, err)

	if health.Checks == nil || health.Checks.Store != "ok" {
		t.Fatalf("expected store check ok, got %+v", health.Checks)
	}
}

// TestReadyzWithSqlite runs the readiness check against the sqlite driver.
func TestReadyzWithSqlite(t *testing.T) {
	baseURL, cleanup := setupRegistryContainer(t, map[string]string{
		"REGISTRY_STORAGE_DRIVER": "sqlite",
		"REGISTRY_DATABASE_FILE":  "/tmp/registry.db",
	})
	defer cleanup()

	sdk := registrysdk.NewClient(baseURL)

	health, err := sdk.Readyz(t.Context())
	assertHealthy(t, health, err)
}
