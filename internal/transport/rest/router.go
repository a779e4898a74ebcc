package rest

import (
	"net/http"

	"github.com/okazimirov/learnlog-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Category *CategoryHandler
	Record   *RecordHandler
	Health   *HealthHandler
}

// NewRouter wires routes and the middleware chain. Read routes are open to
// guests; mutating routes require the owner role earned at login.
func NewRouter(h Handlers, chain middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	mux.HandleFunc("GET /api/categories", h.Category.List)
	mux.Handle("POST /api/categories", owner(h.Category.Create))

	mux.HandleFunc("GET /api/records", h.Record.List)
	mux.Handle("POST /api/records", owner(h.Record.Create))
	mux.HandleFunc("GET /api/records/export", h.Record.Export)
	mux.HandleFunc("GET /api/records/summary", h.Record.Summary)
	mux.HandleFunc("GET /api/records/{id}", h.Record.Get)
	mux.Handle("PUT /api/records/{id}", owner(h.Record.Update))
	mux.Handle("DELETE /api/records/{id}", owner(h.Record.Delete))

	return chain(mux)
}

func owner(h http.HandlerFunc) http.Handler {
	return middleware.RequireOwner(h)
}
