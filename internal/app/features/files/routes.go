package files

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the file API router, to be mounted at /files.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.upload)
	r.Get("/", h.index)
	r.Get("/{id}", h.show)
	r.Put("/{id}/publish", h.publish)
	r.Put("/{id}/unpublish", h.unpublish)
	r.Get("/{id}/data", h.data)

	return r
}
