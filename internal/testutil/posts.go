package testutil

import (
	"fmt"
	"testing"

	poststore "github.com/chronospesquisa/blogapi/internal/app/store/posts"
	"github.com/chronospesquisa/blogapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewPostInput returns a valid create payload with a unique slug derived
// from n. Callers override fields as needed.
func NewPostInput(n int) models.CreateBlogPost {
	return models.CreateBlogPost{
		Title:    fmt.Sprintf("Post de Teste %d", n),
		Slug:     fmt.Sprintf("post-de-teste-%d", n),
		Excerpt:  fmt.Sprintf("Resumo do post %d.", n),
		Content:  fmt.Sprintf("<p>Conteúdo do post %d.</p>", n),
		ImageURL: fmt.Sprintf("https://example.com/images/%d.jpg", n),
		Category: "Testes",
	}
}

// InsertPost builds a post from NewPostInput(n), applies overrides, and
// inserts it through the store. It returns the stored document.
func InsertPost(t *testing.T, db *mongo.Database, n int, overrides func(*models.BlogPost)) models.BlogPost {
	t.Helper()

	ctx, cancel := TestContext()
	defer cancel()

	post := NewPostInput(n).NewPost()
	if overrides != nil {
		overrides(&post)
	}

	store := poststore.New(db)
	if err := store.Insert(ctx, post); err != nil {
		t.Fatalf("failed to insert test post %d: %v", n, err)
	}
	return post
}
