package publicblog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the public blog endpoints.
//
// When mounted at /api/blog:
//   - GET /api/blog        - list published posts
//   - GET /api/blog/{slug} - fetch one published post
//
// No authentication; responses contain only published content.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{slug}", h.GetBySlug)
	return r
}
