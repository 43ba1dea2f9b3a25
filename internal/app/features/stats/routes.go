package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the stats router, to be mounted at /stats.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.serveStats)
	return r
}
