package adminposts

import (
	"net/http"

	"github.com/chronospesquisa/blogapi/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes returns a router with the admin endpoints.
//
// When mounted at /api/admin, /login is open (it is the credential
// check itself) and everything under /posts sits behind the Basic-auth
// gate.
func Routes(h *Handler, admin auth.Admin, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Route("/posts", func(pr chi.Router) {
		pr.Use(auth.RequireAdmin(admin, logger))
		pr.Get("/", h.List)
		pr.Post("/", h.Create)
		pr.Get("/{id}", h.Get)
		pr.Put("/{id}", h.Update)
		pr.Delete("/{id}", h.Delete)
	})

	return r
}
