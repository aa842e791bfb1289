// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database dependencies for this WAFFLE app.
//
// Created in ConnectDB and passed to the subsequent lifecycle hooks:
// EnsureSchema, Startup, BuildHandler, and Shutdown. The Mongo client
// is the only backend this service talks to.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
