package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the status router, to be mounted at /status.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.serveStatus)
	return r
}
