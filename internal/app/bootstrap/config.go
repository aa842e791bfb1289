// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables
// (BLOGAPI_MONGO_URI, BLOGAPI_ADMIN_PASSWORD, ...).
const EnvVarPrefix = "BLOGAPI"

// appConfigKeys defines the configuration keys for this application,
// loaded via WAFFLE's config system from files, environment variables,
// and command-line flags.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (required)"},
	{Name: "mongo_database", Default: "chronos_blog", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "admin_username", Default: "admin", Desc: "Administrator username for the admin API"},
	{Name: "admin_password", Default: "admin123", Desc: "Administrator password (change in production)"},

	{Name: "cors_origins", Default: "*", Desc: "Comma-separated allowed CORS origins ('*' allows any)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AdminUsername: appValues.String("admin_username"),
		AdminPassword: appValues.String("admin_password"),

		CORSOrigins: splitOrigins(appValues.String("cors_origins")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// A missing mongo_uri is fatal: the service cannot run without its
// document store and must not start half-configured.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		logger.Error("mongo_uri is not set")
		return errors.New("mongo_uri is required (set BLOGAPI_MONGO_URI)")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" && appCfg.AdminPassword == "admin123" {
		logger.Warn("admin_password is still the default; change it in production")
	}

	return nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
