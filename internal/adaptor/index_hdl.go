package adaptor

import (
	"net/http"

	"movie-review/pkg/utils"
)

type IndexHandler struct {
	body map[string]any
}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{
		body: map[string]any{
			"message": "Welcome to Movie Review API",
			"version": "v1",
			"endpoints": map[string]any{
				"api": "/api/",
				"authentication": map[string]string{
					"register": "/api/register/",
					"token":    "/api/token/",
					"refresh":  "/api/token/refresh/",
					"logout":   "/api/logout/",
				},
				"resources": map[string]string{
					"users":    "/api/users/",
					"reviews":  "/api/reviews/",
					"likes":    "/api/likes/",
					"comments": "/api/comments/",
					"profiles": "/api/profiles/",
				},
				"movies": map[string]string{
					"search":  "/api/search-movies/",
					"details": "/api/movie-details/{imdb_id}/",
					"info":    "/api/movie-info/",
				},
				"documentation": map[string]string{
					"swagger": "/swagger/",
					"redoc":   "/redoc/",
				},
			},
		},
	}
}

// Root handles GET /api
func (h *IndexHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.body)
}
