// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings (HTTP ports, TLS, logging level, timeouts);
// AppConfig is everything specific to the blog backend.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string; empty is a fatal startup error
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Fixed administrator identity. There is exactly one admin and no
	// user table; the credentials are injected into the auth gate at
	// startup rather than compiled in.
	AdminUsername string
	AdminPassword string

	// CORSOrigins is the allowed-origin list for the API. A single "*"
	// entry allows any origin.
	CORSOrigins []string
}
