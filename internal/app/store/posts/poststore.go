// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"errors"
	"strings"

	"github.com/chronospesquisa/blogapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection holding blog posts.
const CollectionName = "blog_posts"

// maxListResults caps every listing query, public and admin alike.
const maxListResults = 100

var (
	// ErrNotFound is returned when no post matches the given id or slug.
	ErrNotFound = errors.New("post not found")
	// ErrDuplicateSlug is returned when a write collides with the unique
	// slug index.
	ErrDuplicateSlug = errors.New("slug already exists")
)

// Store provides access to the blog_posts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new post store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// ListPublished returns published posts sorted newest first, capped at
// the listing limit.
func (s *Store) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	return s.list(ctx, bson.M{"published": true})
}

// ListAll returns every post, published or not, sorted newest first and
// capped at the listing limit.
func (s *Store) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.BlogPost, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(maxListResults)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.BlogPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublishedBySlug returns the published post with the given slug.
// An unpublished post is indistinguishable from an absent one.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	return s.findOne(ctx, bson.M{"slug": slug, "published": true})
}

// GetByID returns the post with the given domain id.
func (s *Store) GetByID(ctx context.Context, id string) (models.BlogPost, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (models.BlogPost, error) {
	var post models.BlogPost
	err := s.c.FindOne(ctx, filter).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return models.BlogPost{}, ErrNotFound
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

// SlugExists reports whether any post, published or not, already uses
// the given slug.
func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of persisted posts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Insert persists a fully constructed post. A slug collision with the
// unique index is reported as ErrDuplicateSlug.
func (s *Store) Insert(ctx context.Context, post models.BlogPost) error {
	_, err := s.c.InsertOne(ctx, post)
	if isDuplicateKeyErr(err) {
		return ErrDuplicateSlug
	}
	return err
}

// Apply applies a partial patch to the post with the given id. An empty
// patch is a no-op. The caller is expected to re-read the stored
// document afterwards rather than trusting its in-memory copy.
func (s *Store) Apply(ctx context.Context, id string, patch bson.M) error {
	if len(patch) == 0 {
		return nil
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if isDuplicateKeyErr(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes the post with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Best-effort duplicate-detector (works cross-vendors).
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}
