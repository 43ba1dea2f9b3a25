// Package stats provides the aggregate counts endpoint.
//
// Endpoints:
//   - GET /stats - number of users and files
package stats

import (
	"context"
	"net/http"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/jsonutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Counter counts records in one collection.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Handler handles stats requests.
type Handler struct {
	users Counter
	files Counter
	log   *zap.Logger
}

// NewHandler creates a stats handler.
func NewHandler(users, files Counter, logger *zap.Logger) *Handler {
	return &Handler{users: users, files: files, log: logger}
}

// serveStats handles GET /stats. Store failures are logged and collapse to
// a generic 500 so nothing internal leaks.
func (h *Handler) serveStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	userCount, err := h.users.Count(ctx)
	if err != nil {
		h.log.Error("failed to count users", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	fileCount, err := h.files.Count(ctx)
	if err != nil {
		h.log.Error("failed to count files", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	jsonutil.OK(w, map[string]int64{
		"users": userCount,
		"files": fileCount,
	})
}
