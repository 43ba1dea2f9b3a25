// Package accessctl decides who a request belongs to and what it may see.
//
// Authentication resolves an opaque x-token header to a user ID through the
// session store. Authorization for content retrieval follows an
// owner-or-public rule: a private file read by anyone but its owner reports
// "Not found", never "Forbidden", so non-owners cannot probe for the
// existence of private files.
package accessctl

import (
	"context"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/fault"
	"github.com/RajaaKacemi/alx-files-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TokenResolver looks up session tokens. UserID returns "" with a nil error
// when the token has no live session; a non-nil error means the session
// store itself failed.
type TokenResolver interface {
	UserID(ctx context.Context, token string) (string, error)
}

// Service resolves tokens to users and applies visibility rules.
type Service struct {
	sessions TokenResolver
	log      *zap.Logger
}

// New creates an access control service.
func New(sessions TokenResolver, logger *zap.Logger) *Service {
	return &Service{sessions: sessions, log: logger}
}

// Authenticate resolves token to the owning user's ID.
//
// A missing token, a token with no live session, and a session holding a
// malformed user ID all fail with fault.ErrUnauthorized. A session store
// failure surfaces as a store fault.
func (s *Service) Authenticate(ctx context.Context, token string) (primitive.ObjectID, error) {
	if token == "" {
		return primitive.NilObjectID, fault.ErrUnauthorized
	}

	raw, err := s.sessions.UserID(ctx, token)
	if err != nil {
		s.log.Error("session lookup failed", zap.Error(err))
		return primitive.NilObjectID, fault.Store(err)
	}
	if raw == "" {
		return primitive.NilObjectID, fault.ErrUnauthorized
	}

	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		// A corrupt session entry is treated the same as no session.
		s.log.Warn("session contains malformed user id", zap.String("user_id", raw))
		return primitive.NilObjectID, fault.ErrUnauthorized
	}
	return userID, nil
}

// AuthorizeOwnerOrPublic decides whether f may be served to the bearer of
// token. Public files are always allowed. Private files require the token
// to authenticate to the file's owner; every other outcome is
// fault.ErrNotFound so existence stays concealed.
func (s *Service) AuthorizeOwnerOrPublic(ctx context.Context, f *models.File, token string) error {
	if f.IsPublic {
		return nil
	}

	userID, err := s.Authenticate(ctx, token)
	if err != nil {
		if fault.IsStore(err) {
			return err
		}
		return fault.ErrNotFound
	}
	if userID != f.UserID {
		return fault.ErrNotFound
	}
	return nil
}
