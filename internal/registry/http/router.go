package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/relayops/clientreg/internal/registry/service"
	"github.com/relayops/clientreg/internal/registry/store"
	"github.com/relayops/clientreg/pkg/httpx"
	"github.com/relayops/clientreg/pkg/registrysdk"
	"github.com/relayops/clientreg/pkg/slogx"

	_ "github.com/relayops/clientreg/api/registry" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	prefix       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	ClientService *service.ClientService
}

// NewRouter creates a router with the default middleware chain. prefix is
// the fixed routing prefix stripped from every request path before
// dispatch; pass "" to serve at the root.
func NewRouter(prefix, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		prefix:       strings.TrimSuffix(prefix, "/"),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(httpx.DefaultCORS),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Everything not matched above: CORS preflight gets its 204, anything
	// else is an unknown endpoint.
	r.Mux.Handle("/",
		httpx.Chain(http.HandlerFunc(r.handleFallback),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Client Registry Admin API
//	@version		0.1.0
//	@description	Admin API for registering download clients. Each client is stored
//	@description	under an immutable key derived from its name at registration time
//	@description	and carries a display name plus an absolute download URL.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.dispatch(), r.middlewares...).ServeHTTP(w, req)
}

// dispatch strips the configured routing prefix (when set) before handing
// the request to the mux. Paths outside the prefix are unknown endpoints.
func (r *Router) dispatch() http.Handler {
	if r.prefix == "" {
		return r.Mux
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		trimmed := strings.TrimPrefix(req.URL.Path, r.prefix)
		if len(trimmed) == len(req.URL.Path) || !strings.HasPrefix(trimmed, "/") {
			r.handleFallback(w, req)
			return
		}

		clone := req.Clone(req.Context())
		clone.URL.Path = trimmed
		r.Mux.ServeHTTP(w, clone)
	})
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	// Reads get the public profile, writes the moderate one
	r.Mux.Handle("GET /clients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /clients",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// handleFallback serves every request no registered route matched. OPTIONS
// requests anywhere are CORS preflights and complete with 204 (the CORS
// middleware has already set the access-control headers); everything else
// is an unknown endpoint.
func (r *Router) handleFallback(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	httpx.WriteJSON(w, http.StatusNotFound, registrysdk.ErrorResponse{
		Error: "Endpoint not found",
	})
}
