// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/seed setup are
// complete, but before the HTTP handler is built and requests are
// served.
//
// This service has no caches to warm and no background workers; the
// hook only records the configured admin identity for operators.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("admin identity configured",
		zap.String("username", appCfg.AdminUsername))
	return nil
}
