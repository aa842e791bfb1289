// Package publicblog serves the anonymous read side of the blog.
//
// Endpoints (mounted under /api):
//   - GET /api/         - service info message
//   - GET /api/blog        - published posts, newest first
//   - GET /api/blog/{slug} - one published post by slug
//
// Only published posts are visible here; an unpublished post is
// indistinguishable from one that does not exist.
package publicblog

import (
	"net/http"

	poststore "github.com/chronospesquisa/blogapi/internal/app/store/posts"
	"github.com/chronospesquisa/blogapi/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler handles public blog requests.
type Handler struct {
	store  *poststore.Store
	logger *zap.Logger
}

// NewHandler creates a new public blog handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		store:  poststore.New(db),
		logger: logger,
	}
}

// Root handles GET /api/ with the service info message.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, map[string]string{"message": "Chronos Pesquisa Clínica API"})
}

// List handles GET /api/blog. It returns published posts sorted by
// created_at descending, capped at the listing limit.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPublished(r.Context())
	if err != nil {
		h.logger.Error("failed to list published posts", zap.Error(err))
		jsonutil.InternalError(w, "failed to load posts")
		return
	}
	jsonutil.OK(w, posts)
}

// GetBySlug handles GET /api/blog/{slug}. Unpublished posts yield the
// same 404 as nonexistent slugs.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.store.GetPublishedBySlug(r.Context(), slug)
	if err == poststore.ErrNotFound {
		jsonutil.NotFound(w, "Post não encontrado")
		return
	}
	if err != nil {
		h.logger.Error("failed to load post by slug",
			zap.String("slug", slug),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to load post")
		return
	}
	jsonutil.OK(w, post)
}
