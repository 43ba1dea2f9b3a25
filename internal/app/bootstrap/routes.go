// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	authfeature "github.com/RajaaKacemi/alx-files-manager/internal/app/features/auth"
	filesfeature "github.com/RajaaKacemi/alx-files-manager/internal/app/features/files"
	statsfeature "github.com/RajaaKacemi/alx-files-manager/internal/app/features/stats"
	statusfeature "github.com/RajaaKacemi/alx-files-manager/internal/app/features/status"
	usersfeature "github.com/RajaaKacemi/alx-files-manager/internal/app/features/users"
	blobstore "github.com/RajaaKacemi/alx-files-manager/internal/app/store/blob"
	filestore "github.com/RajaaKacemi/alx-files-manager/internal/app/store/file"
	sessionstore "github.com/RajaaKacemi/alx-files-manager/internal/app/store/session"
	userstore "github.com/RajaaKacemi/alx-files-manager/internal/app/store/user"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/accessctl"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/apicors"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/content"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/directory"
	"github.com/RajaaKacemi/alx-files-manager/internal/app/system/requestlog"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Stores are built over the connections in
// deps, the core services over the stores, and the feature routers over the
// services.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Stores.
	files := filestore.New(deps.MongoDatabase)
	users := userstore.New(deps.MongoDatabase)
	sessions := sessionstore.New(deps.Redis, appCfg.SessionTTL)
	blobs := blobstore.New(deps.FileStorage)

	// Core services.
	access := accessctl.New(sessions, logger)
	dir := directory.New(access, files, blobs, logger)
	resolver := content.New(access, files, blobs, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestlog.Middleware(logger))
	r.Use(apicors.Middleware())
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Mount("/status", statusfeature.Routes(statusfeature.NewHandler(deps.MongoClient, deps.Redis, logger)))
	r.Mount("/stats", statsfeature.Routes(statsfeature.NewHandler(users, files, logger)))
	r.Mount("/users", usersfeature.Routes(usersfeature.NewHandler(users, access, logger)))
	r.Mount("/files", filesfeature.Routes(filesfeature.NewHandler(dir, resolver, logger)))
	r.Mount("/", authfeature.Routes(authfeature.NewHandler(users, sessions, logger)))

	return r, nil
}
