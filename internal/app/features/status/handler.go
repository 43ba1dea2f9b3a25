// Package status provides the liveness endpoint.
//
// Endpoints:
//   - GET /status - report whether Redis and MongoDB answer a ping
package status

import (
	"context"
	"net/http"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/jsonutil"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/timeouts"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler handles status requests.
type Handler struct {
	mongo *mongo.Client
	redis *redis.Client
	log   *zap.Logger
}

// NewHandler creates a status handler.
func NewHandler(mongoClient *mongo.Client, redisClient *redis.Client, logger *zap.Logger) *Handler {
	return &Handler{mongo: mongoClient, redis: redisClient, log: logger}
}

// serveStatus handles GET /status. It always returns 200; the body reports
// per-store liveness.
func (h *Handler) serveStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	dbAlive := h.mongo.Ping(ctx, readpref.Primary()) == nil
	redisAlive := h.redis.Ping(ctx).Err() == nil

	if !dbAlive || !redisAlive {
		h.log.Warn("store liveness degraded",
			zap.Bool("db", dbAlive),
			zap.Bool("redis", redisAlive),
		)
	}

	jsonutil.OK(w, map[string]bool{
		"redis": redisAlive,
		"db":    dbAlive,
	})
}
