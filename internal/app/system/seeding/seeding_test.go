package seeding

import (
	"testing"

	poststore "github.com/chronospesquisa/blogapi/internal/app/store/posts"
	"github.com/chronospesquisa/blogapi/internal/domain/models"
	"github.com/chronospesquisa/blogapi/internal/testutil"
	"go.uber.org/zap"
)

func TestSeedAll_EmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}

	store := poststore.New(db)
	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != int64(len(defaultBlogPosts)) {
		t.Errorf("Count() = %d, want %d", count, len(defaultBlogPosts))
	}

	posts, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	for _, p := range posts {
		if p.ID == "" {
			t.Errorf("seeded post %q has empty id", p.Slug)
		}
		if p.CreatedAt.IsZero() {
			t.Errorf("seeded post %q has zero created_at", p.Slug)
		}
		if !p.Published {
			t.Errorf("seeded post %q is not published", p.Slug)
		}
		if p.Author != models.DefaultAuthor {
			t.Errorf("seeded post %q author = %q, want %q", p.Slug, p.Author, models.DefaultAuthor)
		}
	}

	// All seed slugs must be present.
	bySlug := make(map[string]bool, len(posts))
	for _, p := range posts {
		bySlug[p.Slug] = true
	}
	for _, in := range defaultBlogPosts {
		if !bySlug[in.Slug] {
			t.Errorf("seed slug %q missing after SeedAll()", in.Slug)
		}
	}
}

func TestSeedAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}
	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() second call error = %v", err)
	}

	count, err := poststore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != int64(len(defaultBlogPosts)) {
		t.Errorf("Count() after second SeedAll() = %d, want %d", count, len(defaultBlogPosts))
	}
}

func TestSeedAll_SkipsNonEmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A single pre-existing post suppresses seeding entirely, even though
	// none of the seed slugs are present.
	testutil.InsertPost(t, db, 1, nil)

	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}

	count, err := poststore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1 (no seeding)", count)
	}
}

func TestDefaultBlogPosts(t *testing.T) {
	if len(defaultBlogPosts) != 6 {
		t.Fatalf("len(defaultBlogPosts) = %d, want 6", len(defaultBlogPosts))
	}

	seen := map[string]bool{}
	for _, in := range defaultBlogPosts {
		if missing := in.MissingFields(); len(missing) > 0 {
			t.Errorf("seed post %q missing fields: %v", in.Slug, missing)
		}
		if seen[in.Slug] {
			t.Errorf("duplicate seed slug %q", in.Slug)
		}
		seen[in.Slug] = true
	}
}
