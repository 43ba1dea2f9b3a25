// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema setup are complete, but
// before the HTTP handler is built and requests are served.
//
// The service keeps no warm caches and runs no background workers, so this
// only records that the process is ready to build its handler. The context
// will be cancelled if the process is asked to shut down while Startup is
// running.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("startup complete",
		zap.String("database", appCfg.DBDatabase),
		zap.String("folder_path", appCfg.FolderPath),
		zap.Duration("session_ttl", appCfg.SessionTTL),
	)
	return nil
}
