// Package session provides the Redis-backed session token store.
//
// A session maps an opaque token to a user ID under the key "auth_<token>"
// with a TTL. Expiry is enforced entirely by Redis; a token that expires
// mid-request simply reads as absent.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys in Redis.
const keyPrefix = "auth_"

// Store manages session tokens in Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a session store. ttl is the lifetime assigned to every new
// session.
func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores token -> userID with the configured TTL.
func (s *Store) Create(ctx context.Context, token, userID string) error {
	return s.rdb.Set(ctx, keyPrefix+token, userID, s.ttl).Err()
}

// UserID returns the user ID for a token, or "" with a nil error when the
// session does not exist or has expired. A non-nil error means Redis itself
// failed.
func (s *Store) UserID(ctx context.Context, token string) (string, error) {
	v, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// Delete removes a session. Deleting an absent token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// IsAlive reports whether Redis answers a ping.
func (s *Store) IsAlive(ctx context.Context) bool {
	return s.rdb.Ping(ctx).Err() == nil
}
