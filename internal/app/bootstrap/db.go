// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/indexes"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/validators"
)

// ConnectDB connects to MongoDB, Redis, and the blob storage backend.
//
// A MongoDB connection failure aborts startup: the service cannot do
// anything without its metadata store. A Redis ping failure is logged but
// does not abort; the client reconnects on its own and /status reports the
// cache as down in the meantime.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	// Configure the MongoDB connection pool.
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI(), appCfg.DBDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}
	db := client.Database(appCfg.DBDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.DBDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	// Redis session cache.
	rdb := redis.NewClient(&redis.Options{
		Addr: appCfg.RedisAddr(),
		DB:   appCfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis is not answering; sessions unavailable until it recovers",
			zap.String("addr", appCfg.RedisAddr()),
			zap.Error(err),
		)
	} else {
		logger.Info("connected to Redis", zap.String("addr", appCfg.RedisAddr()))
	}

	// Local blob storage for file bytes.
	store, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.FolderPath,
		BaseURL:  "/files",
	})
	if err != nil {
		return DBDeps{}, fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	logger.Info("initialized local blob storage", zap.String("path", appCfg.FolderPath))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Redis:         rdb,
		FileStorage:   store,
	}, nil
}

// EnsureSchema sets up collections, validators, and indexes. It runs after
// ConnectDB succeeds but before Startup and before the HTTP handler is
// built.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	// Ensure collections exist and attach JSON-Schema validators first so
	// indexes are created on existing collections.
	logger.Info("ensuring collections and validators")
	if err := validators.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure validators", zap.Error(err))
		return err
	}

	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}
	return nil
}
