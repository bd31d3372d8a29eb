package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/register", authHandler.Register)
	r.Post("/token", authHandler.ObtainToken)
	r.Post("/token/refresh", authHandler.Refresh)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.RequireAuth).Post("/logout", authHandler.Logout)
}
