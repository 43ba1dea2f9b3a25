// Package users provides account creation and the current-user endpoint.
//
// Endpoints:
//   - POST /users    - Register a new account with email and password
//   - GET  /users/me - Return the account behind the x-token header
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/RajaaKacemi/alx-files-manager/internal/app/store/user"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/accessctl"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/authutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/jsonutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "x-token"

// Store is the user-store surface the handler needs.
type Store interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Handler handles user API requests.
type Handler struct {
	users Store
	auth  *accessctl.Service
	log   *zap.Logger
}

// NewHandler creates a users handler.
func NewHandler(users Store, auth *accessctl.Service, logger *zap.Logger) *Handler {
	return &Handler{users: users, auth: auth, log: logger}
}

// register handles POST /users.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if in.Email == "" {
		jsonutil.Error(w, http.StatusBadRequest, "Missing email")
		return
	}
	if in.Password == "" {
		jsonutil.Error(w, http.StatusBadRequest, "Missing password")
		return
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		h.log.Error("password hashing failed", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	u, err := h.users.Create(r.Context(), in.Email, hash)
	if err != nil {
		if errors.Is(err, userstore.ErrEmailTaken) {
			jsonutil.Error(w, http.StatusBadRequest, "Already exist")
			return
		}
		h.log.Error("failed to create user", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("user registered", zap.String("user_id", u.ID.Hex()))
	jsonutil.Created(w, u)
}

// me handles GET /users/me.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := h.auth.Authenticate(r.Context(), r.Header.Get(TokenHeader))
	if err != nil {
		jsonutil.Fault(w, err)
		return
	}

	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to load user", zap.String("user_id", userID.Hex()), zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if u == nil {
		// Session outlived the account.
		jsonutil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	jsonutil.OK(w, u)
}
