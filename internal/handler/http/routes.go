package http

import (
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/v1/user", func(r chi.Router) {
		r.With(withJSONBody[models.SignUpRequest](h.validator)).Post("/signup", h.signUp)
		r.With(h.limitSignIn, withJSONBody[models.SignInRequest](h.validator)).Post("/signin", h.signIn)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/profile", h.getProfile)
			r.With(withJSONBody[models.ProfileUpdateRequest](h.validator)).Put("/profile", h.updateProfile)
			r.With(withJSONBody[models.UploadURLRequest](h.validator)).Post("/avatar/upload-url", h.avatarUploadURL)
		})
	})

	router.Route("/api/v1/blog", func(r chi.Router) {
		r.Get("/bulk", h.listBlogs)
		r.With(h.auth, withJSONBody[models.BlogCreateRequest](h.validator)).Post("/", h.createBlog)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getBlog)
			r.With(h.auth, withJSONBody[models.BlogUpdateRequest](h.validator), h.requireOwnership(models.ResourceBlog, "id")).
				Put("/", h.updateBlog)
			r.With(h.auth, h.requireOwnership(models.ResourceBlog, "id")).
				Delete("/", h.deleteBlog)
			r.With(h.auth, withJSONBody[models.UploadURLRequest](h.validator), h.requireOwnership(models.ResourceBlog, "id")).
				Post("/image/upload-url", h.blogImageUploadURL)

			r.Get("/comment", h.listComments)
			r.With(h.auth, withJSONBody[models.CommentCreateRequest](h.validator)).Post("/comment", h.createComment)
			r.With(h.auth, h.requireOwnership(models.ResourceComment, "commentId")).
				Delete("/comment/{commentId}", h.deleteComment)

			r.With(h.auth, withJSONBody[models.ReactionRequest](h.validator)).Post("/like", h.react)
			r.With(h.optionalAuth).Get("/like", h.reactionSummary)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
