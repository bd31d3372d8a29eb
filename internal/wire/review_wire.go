package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/reviews", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", reviewHandler.List)
		r.Get("/{id}", reviewHandler.Retrieve)
		r.Get("/movie/{title}", reviewHandler.ByMovie)
		r.Get("/most-liked/{title}", reviewHandler.MostLiked)

		// ==================== PROTECTED ROUTES ====================
		// Ownership is checked in the service.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/recommendations", reviewHandler.Recommendations)
			r.Post("/", reviewHandler.Create)
			r.Put("/{id}", reviewHandler.Update)
			r.Patch("/{id}", reviewHandler.Patch)
			r.Delete("/{id}", reviewHandler.Delete)
		})
	})
}

func wireSocial(r chi.Router, likeHandler *adaptor.LikeHandler, commentHandler *adaptor.CommentHandler) {
	r.With(middleware.RequireAuth).Route("/likes", func(r chi.Router) {
		r.Get("/", likeHandler.List)
		r.Post("/", likeHandler.Create)
		r.Get("/{id}", likeHandler.Retrieve)
		r.Delete("/{id}", likeHandler.Delete)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", commentHandler.List)
		r.Get("/{id}", commentHandler.Retrieve)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/", commentHandler.Create)
			r.Put("/{id}", commentHandler.Update)
			r.Patch("/{id}", commentHandler.Patch)
			r.Delete("/{id}", commentHandler.Delete)
		})
	})
}
