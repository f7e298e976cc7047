package httpx

import "net/http"

// CORSConfig controls the headers emitted by the CORS middleware.
type CORSConfig struct {
	AllowOrigin  string
	AllowHeaders string
	AllowMethods string
}

// DefaultCORS is the wildcard policy used by the registry API. The admin UI
// is served from an arbitrary origin, so every origin is accepted.
var DefaultCORS = CORSConfig{
	AllowOrigin:  "*",
	AllowHeaders: "Content-Type",
	AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
}

// CORS sets the access-control headers on every response. Preflight
// termination is handled by the router's fallback handler, not here, so the
// middleware composes with method-specific routes.
func CORS(cfg CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			h.Set("Access-Control-Allow-Headers", cfg.AllowHeaders)
			h.Set("Access-Control-Allow-Methods", cfg.AllowMethods)

			next.ServeHTTP(w, r)
		})
	}
}
