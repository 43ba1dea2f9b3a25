// Package files provides the file metadata and content API.
//
// Endpoints (mounted at /files):
//   - POST   /files                 - Create a file, image, or folder
//   - GET    /files                 - List the requester's files (paged)
//   - GET    /files/{id}            - Fetch one owned record
//   - PUT    /files/{id}/publish    - Make a record public
//   - PUT    /files/{id}/unpublish  - Make a record private
//   - GET    /files/{id}/data       - Serve raw file content
//
// All endpoints except /data require a valid x-token header; /data accepts
// an optional token and serves public files without one.
package files

import (
	"net/http"
	"strconv"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/content"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/directory"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/jsonutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/normalize"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "x-token"

// Handler handles file API requests.
type Handler struct {
	dir      *directory.Service
	resolver *content.Resolver
	log      *zap.Logger
}

// NewHandler creates a files handler.
func NewHandler(dir *directory.Service, resolver *content.Resolver, logger *zap.Logger) *Handler {
	return &Handler{dir: dir, resolver: resolver, log: logger}
}

// upload handles POST /files.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		ParentID string `json:"parentId"`
		IsPublic bool   `json:"isPublic"`
		Data     string `json:"data"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	created, err := h.dir.Create(r.Context(), token(r), directory.CreateInput{
		Name:     in.Name,
		Type:     in.Type,
		ParentID: in.ParentID,
		IsPublic: in.IsPublic,
		Data:     in.Data,
	})
	if err != nil {
		jsonutil.Fault(w, err)
		return
	}
	jsonutil.Created(w, created)
}

// show handles GET /files/{id}.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	f, err := h.dir.Get(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.Fault(w, err)
		return
	}
	jsonutil.OK(w, f)
}

// index handles GET /files?parentId=&page=.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(normalize.QueryParam(r.URL.Query().Get("page")), 10, 64)

	list, err := h.dir.List(r.Context(), token(r), normalize.QueryParam(r.URL.Query().Get("parentId")), page)
	if err != nil {
		jsonutil.Fault(w, err)
		return
	}
	jsonutil.OK(w, list)
}

// publish handles PUT /files/{id}/publish.
func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// unpublish handles PUT /files/{id}/unpublish.
func (h *Handler) unpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *Handler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	f, err := h.dir.SetVisibility(r.Context(), token(r), chi.URLParam(r, "id"), isPublic)
	if err != nil {
		jsonutil.Fault(w, err)
		return
	}
	jsonutil.OK(w, f)
}

// data handles GET /files/{id}/data and serves raw bytes with the resolved
// content type.
func (h *Handler) data(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := h.resolver.Resolve(r.Context(), chi.URLParam(r, "id"), token(r))
	if err != nil {
		jsonutil.Fault(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.log.Warn("failed to write file content", zap.Error(err))
	}
}

func token(r *http.Request) string {
	return r.Header.Get(TokenHeader)
}
