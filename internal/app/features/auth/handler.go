// Package auth provides session login and logout.
//
// Endpoints:
//   - GET /connect    - Exchange Basic credentials for a session token
//   - GET /disconnect - Delete the session behind the x-token header
//
// Tokens are random UUIDs stored in the session cache with a TTL; they are
// the only credential subsequent requests carry.
package auth

import (
	"context"
	"net/http"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/authutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/jsonutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "x-token"

// UserStore is the user lookup surface the handler needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionStore manages token lifetimes in the session cache.
type SessionStore interface {
	Create(ctx context.Context, token, userID string) error
	UserID(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// Handler handles login and logout requests.
type Handler struct {
	users    UserStore
	sessions SessionStore
	log      *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(users UserStore, sessions SessionStore, logger *zap.Logger) *Handler {
	return &Handler{users: users, sessions: sessions, log: logger}
}

// connect handles GET /connect. Credentials arrive as HTTP Basic auth; on
// success a fresh token is stored in the session cache and returned.
func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok || email == "" {
		jsonutil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		h.log.Error("user lookup failed", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if u == nil || !authutil.CheckPassword(password, u.PasswordHash) {
		jsonutil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token := uuid.NewString()
	if err := h.sessions.Create(r.Context(), token, u.ID.Hex()); err != nil {
		h.log.Error("session create failed", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("session opened", zap.String("user_id", u.ID.Hex()))
	jsonutil.OK(w, map[string]string{"token": token})
}

// disconnect handles GET /disconnect.
func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		jsonutil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := h.sessions.UserID(r.Context(), token)
	if err != nil {
		h.log.Error("session lookup failed", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if userID == "" {
		jsonutil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.sessions.Delete(r.Context(), token); err != nil {
		h.log.Error("session delete failed", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	jsonutil.NoContent(w)
}
