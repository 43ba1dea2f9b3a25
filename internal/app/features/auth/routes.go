package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the auth router, to be mounted at the root.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/connect", h.connect)
	r.Get("/disconnect", h.disconnect)
	return r
}
