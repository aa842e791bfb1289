// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	adminpostsfeature "github.com/chronospesquisa/blogapi/internal/app/features/adminposts"
	healthfeature "github.com/chronospesquisa/blogapi/internal/app/features/health"
	publicblogfeature "github.com/chronospesquisa/blogapi/internal/app/features/publicblog"
	"github.com/chronospesquisa/blogapi/internal/app/system/apicors"
	"github.com/chronospesquisa/blogapi/internal/app/system/auth"
	"github.com/chronospesquisa/blogapi/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// The whole surface lives under /api:
//   - GET  /api/              service info
//   - GET  /api/health        health check
//   - GET  /api/blog          public: published posts
//   - GET  /api/blog/{slug}   public: one published post
//   - POST /api/admin/login   credential check
//   - /api/admin/posts...     admin CRUD, HTTP Basic on every request
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	admin := auth.Admin{
		Username: appCfg.AdminUsername,
		Password: appCfg.AdminPassword,
	}

	publicHandler := publicblogfeature.NewHandler(deps.MongoDatabase, logger)
	adminHandler := adminpostsfeature.NewHandler(deps.MongoDatabase, admin, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// Request timeout: nothing here should outlive a couple of store
	// round-trips.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS must run before routing so preflights are answered for every
	// path, including 404s.
	r.Use(apicors.Middleware(appCfg.CORSOrigins))

	r.Route("/api", func(api chi.Router) {
		api.Get("/", publicHandler.Root)
		api.Mount("/health", healthfeature.Routes(healthHandler))
		api.Mount("/blog", publicblogfeature.Routes(publicHandler))
		api.Mount("/admin", adminpostsfeature.Routes(adminHandler, admin, logger))
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.NotFound(w, "not found")
	})

	return r, nil
}
