// Package adminposts provides the administrator CRUD surface for blog
// posts, plus the credential-check login endpoint.
//
// Endpoints (mounted under /api/admin):
//   - POST   /api/admin/login       - validate fixed credentials (no auth)
//   - GET    /api/admin/posts       - list all posts, drafts included
//   - GET    /api/admin/posts/{id}  - fetch one post by id
//   - POST   /api/admin/posts       - create a post
//   - PUT    /api/admin/posts/{id}  - partial update
//   - DELETE /api/admin/posts/{id}  - hard delete
//
// Everything under /posts requires HTTP Basic admin credentials on
// every request.
package adminposts

import (
	"net/http"

	poststore "github.com/chronospesquisa/blogapi/internal/app/store/posts"
	"github.com/chronospesquisa/blogapi/internal/app/system/auth"
	"github.com/chronospesquisa/blogapi/internal/app/system/jsonutil"
	"github.com/chronospesquisa/blogapi/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler handles admin post management requests.
type Handler struct {
	store  *poststore.Store
	admin  auth.Admin
	logger *zap.Logger
}

// NewHandler creates a new admin posts handler.
func NewHandler(db *mongo.Database, admin auth.Admin, logger *zap.Logger) *Handler {
	return &Handler{
		store:  poststore.New(db),
		admin:  admin,
		logger: logger,
	}
}

// Login handles POST /api/admin/login. It re-validates the fixed admin
// credentials and returns a success flag for client-side session state.
// It does not require prior authentication and issues no session
// artifact.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	if !h.admin.Verify(in.Username, in.Password) {
		h.logger.Warn("admin login check failed",
			zap.String("remote_addr", r.RemoteAddr))
		jsonutil.Unauthorized(w, "Credenciais inválidas")
		return
	}

	jsonutil.OK(w, loginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
	})
}

// List handles GET /api/admin/posts. Unlike the public listing, drafts
// are included; the sort and cap are the same.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list posts", zap.Error(err))
		jsonutil.InternalError(w, "failed to load posts")
		return
	}
	jsonutil.OK(w, posts)
}

// Get handles GET /api/admin/posts/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.store.GetByID(r.Context(), id)
	if err == poststore.ErrNotFound {
		jsonutil.NotFound(w, "Post não encontrado")
		return
	}
	if err != nil {
		h.logger.Error("failed to load post",
			zap.String("id", id),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to load post")
		return
	}
	jsonutil.OK(w, post)
}

// Create handles POST /api/admin/posts. The slug must not already be in
// use; the pre-check produces the conflict response, and the unique
// index backs it up if two creators race.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateBlogPost
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if missing := in.MissingFields(); len(missing) > 0 {
		jsonutil.ValidationError(w, missing)
		return
	}

	exists, err := h.store.SlugExists(r.Context(), in.Slug)
	if err != nil {
		h.logger.Error("failed to check slug",
			zap.String("slug", in.Slug),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to create post")
		return
	}
	if exists {
		jsonutil.BadRequest(w, "Slug já existe")
		return
	}

	post := in.NewPost()
	if err := h.store.Insert(r.Context(), post); err != nil {
		if err == poststore.ErrDuplicateSlug {
			jsonutil.BadRequest(w, "Slug já existe")
			return
		}
		h.logger.Error("failed to insert post",
			zap.String("slug", post.Slug),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to create post")
		return
	}

	h.logger.Info("post created",
		zap.String("id", post.ID),
		zap.String("slug", post.Slug))
	jsonutil.Created(w, post)
}

// Update handles PUT /api/admin/posts/{id}. Only fields present and
// non-null in the payload are applied; the response is the document
// re-read from the store after the patch, not the in-memory copy.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.UpdateBlogPost
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	if _, err := h.store.GetByID(r.Context(), id); err != nil {
		if err == poststore.ErrNotFound {
			jsonutil.NotFound(w, "Post não encontrado")
			return
		}
		h.logger.Error("failed to load post for update",
			zap.String("id", id),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to update post")
		return
	}

	if err := h.store.Apply(r.Context(), id, in.Patch()); err != nil {
		switch err {
		case poststore.ErrNotFound:
			jsonutil.NotFound(w, "Post não encontrado")
		case poststore.ErrDuplicateSlug:
			jsonutil.BadRequest(w, "Slug já existe")
		default:
			h.logger.Error("failed to apply post update",
				zap.String("id", id),
				zap.Error(err))
			jsonutil.InternalError(w, "failed to update post")
		}
		return
	}

	updated, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to re-read post after update",
			zap.String("id", id),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to update post")
		return
	}

	h.logger.Info("post updated", zap.String("id", id))
	jsonutil.OK(w, updated)
}

// Delete handles DELETE /api/admin/posts/{id}. Hard delete, no
// tombstone.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(r.Context(), id)
	if err == poststore.ErrNotFound {
		jsonutil.NotFound(w, "Post não encontrado")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete post",
			zap.String("id", id),
			zap.Error(err))
		jsonutil.InternalError(w, "failed to delete post")
		return
	}

	h.logger.Info("post deleted", zap.String("id", id))
	jsonutil.OK(w, map[string]string{"message": "Post excluído com sucesso"})
}
