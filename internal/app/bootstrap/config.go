// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables, e.g.
// FILES_MANAGER_DB_HOST.
const EnvVarPrefix = "FILES_MANAGER"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: db_host, redis_host, folder_path, etc.
//   - Environment variables: FILES_MANAGER_DB_HOST, FILES_MANAGER_FOLDER_PATH, etc.
//   - Command-line flags: --db_host, --folder_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "db_host", Default: "localhost", Desc: "MongoDB host"},
	{Name: "db_port", Default: 27017, Desc: "MongoDB port"},
	{Name: "db_database", Default: "files_manager", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "redis_host", Default: "localhost", Desc: "Redis host for the session cache"},
	{Name: "redis_port", Default: 6379, Desc: "Redis port"},
	{Name: "redis_db", Default: 0, Desc: "Redis database number"},

	{Name: "session_ttl", Default: "24h", Desc: "Session token lifetime (e.g., 24h, 30m)"},

	{Name: "folder_path", Default: "/tmp/files_manager", Desc: "Root directory for stored file bytes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DBHost:           appValues.String("db_host"),
		DBPort:           appValues.Int("db_port"),
		DBDatabase:       appValues.String("db_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		RedisHost: appValues.String("redis_host"),
		RedisPort: appValues.Int("redis_port"),
		RedisDB:   appValues.Int("redis_db"),

		SessionTTL: appValues.Duration("session_ttl", 24*time.Hour),

		FolderPath: appValues.String("folder_path"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI()); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", appCfg.SessionTTL)
	}
	if appCfg.FolderPath == "" {
		return fmt.Errorf("folder_path must not be empty")
	}
	return nil
}
