package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the users router, to be mounted at /users.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.register)
	r.Get("/me", h.me)
	return r
}
