// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	poststore "github.com/chronospesquisa/blogapi/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll is called at startup, before seeding and before any request
// is served. Each ensure* function is idempotent; errors are aggregated
// so startup can fail fast with everything that is wrong.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureBlogPosts(ctx, db); err != nil {
		problems = append(problems, "blog_posts: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureBlogPosts reconciles the blog_posts index set.
//
// The unique slug index makes slug uniqueness a store-level constraint:
// a create (or slug-changing update) that loses a race is rejected with
// a duplicate-key error instead of admitting two posts with the same
// slug.
func ensureBlogPosts(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(poststore.CollectionName)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Unique domain id: the stable external reference for admin ops.
		{
			Keys: bson.D{
				{Key: "id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_blog_posts_id"),
		},
		// Unique slug for public lookup.
		{
			Keys: bson.D{
				{Key: "slug", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_blog_posts_slug"),
		},
		// Public listing: published filter + newest-first sort.
		{
			Keys: bson.D{
				{Key: "published", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_blog_posts_published_created"),
		},
	})
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var name string
		unique := false
		if m.Options != nil {
			if m.Options.Name != nil {
				name = *m.Options.Name
			}
			if m.Options.Unique != nil {
				unique = *m.Options.Unique
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// CreateOne is idempotent for an identical spec; a conflict
			// means an index with the same keys exists under different
			// options, so drop by name and retry once.
			if !isOptionsConflictErr(err) {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
				continue
			}
			if _, dropErr := coll.Indexes().DropOne(ctx, name); dropErr != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), name, dropErr))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
				continue
			}
		}

		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.Bool("unique", unique))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Mongo/DocDB returns IndexOptionsConflict when an index with the same
// keys already exists under a different name or with other options.
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
