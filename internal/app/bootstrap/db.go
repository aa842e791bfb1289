// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/chronospesquisa/blogapi/internal/app/system/indexes"
	"github.com/chronospesquisa/blogapi/internal/app/system/seeding"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection.
//
// WAFFLE calls this after configuration is loaded but before
// EnsureSchema and Startup. The pooled client lives in DBDeps and is
// passed explicitly to every component that needs it; nothing holds a
// process-global handle.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
	}, nil
}

// EnsureSchema sets up indexes and seeds default content.
//
// This runs after ConnectDB succeeds but before the HTTP handler is
// built, so both the unique slug constraint and the default articles
// are in place before the first request is served.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	logger.Info("seeding default content")
	if err := seeding.SeedAll(ctx, db, logger); err != nil {
		logger.Error("failed to seed default content", zap.Error(err))
		return err
	}

	return nil
}
