// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	poststore "github.com/chronospesquisa/blogapi/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll populates default content on first run.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return seedBlogPosts(ctx, db, logger)
}

// seedBlogPosts inserts the built-in default articles when the store is
// empty. Any existing post, even a single one, suppresses seeding
// entirely: this is a one-time bootstrap, not an idempotent merge, so
// changed seed content is never re-applied on later runs.
func seedBlogPosts(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := poststore.New(db)

	count, err := store.Count(ctx)
	if err != nil {
		logger.Error("failed to count blog posts", zap.Error(err))
		return err
	}
	if count > 0 {
		logger.Debug("blog posts already present, skipping seed",
			zap.Int64("count", count))
		return nil
	}

	// Insertion order preserves the list order; ids and timestamps come
	// from the same construction path admin creates use.
	for _, in := range defaultBlogPosts {
		post := in.NewPost()
		if err := store.Insert(ctx, post); err != nil {
			logger.Error("failed to seed blog post",
				zap.String("slug", post.Slug),
				zap.Error(err))
			return err
		}
		logger.Info("seeded blog post", zap.String("slug", post.Slug))
	}

	return nil
}
