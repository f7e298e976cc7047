package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter("")

	rec := doJSON(t, r, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.Equal(t, "Endpoint not found", decodeError(t, rec).Error)
}

func TestPreflightReturns204(t *testing.T) {
	r := newTestRouter("")

	for _, path := range []string{"/clients", "/clients/Acme", "/anything"} {
		rec := doJSON(t, r, http.MethodOptions, path, "")
		require.Equal(t, http.StatusNoContent, rec.Code, "OPTIONS %s", path)
		require.Empty(t, rec.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	r := newTestRouter("")

	rec := doJSON(t, r, http.MethodGet, "/clients", "")
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	require.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))

	// The fallback carries the same headers, preflights included.
	rec = doJSON(t, r, http.MethodOptions, "/clients", "")
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPrefixStripping(t *testing.T) {
	r := newTestRouter("/api")

	rec := doJSON(t, r, http.MethodPost, "/api/clients", `{"name":"Acme","downloadLink":"https://x.test/a.zip"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/clients/Acme", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Unprefixed paths fall through to the not-found handler.
	rec = doJSON(t, r, http.MethodGet, "/clients", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter("")

	rec := doJSON(t, r, http.MethodGet, "/livez", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok"`)
}

func TestRequestsCarryNoCacheHeaders(t *testing.T) {
	r := newTestRouter("")

	rec := doJSON(t, r, http.MethodGet, "/clients", "")
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
