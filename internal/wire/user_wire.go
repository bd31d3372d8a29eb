package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, profileHandler *adaptor.ProfileHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Retrieve)
		r.Get("/{id}/profile", userHandler.Profile)
		r.Get("/{id}/reviews", userHandler.Reviews)
	})

	// ==================== PROTECTED ROUTES ====================
	// Profiles are only ever visible to their owner.
	r.With(middleware.RequireAuth).Route("/profiles", func(r chi.Router) {
		r.Get("/", profileHandler.List)
		r.Post("/", profileHandler.Create)
		r.Get("/{id}", profileHandler.Retrieve)
		r.Put("/{id}", profileHandler.Update)
		r.Patch("/{id}", profileHandler.Patch)
		r.Delete("/{id}", profileHandler.Delete)
	})
}
