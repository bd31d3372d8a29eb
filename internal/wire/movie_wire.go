package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

// wireMovie mounts the metadata lookups. The /api copy requires a token,
// the /web/api copy backs the public search page.
func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, requireAuth bool) {
	if requireAuth {
		r = r.With(middleware.RequireAuth)
	}

	r.Get("/search-movies", movieHandler.Search)
	r.Get("/movie-details/{imdb_id}", movieHandler.Details)
	r.Get("/movie-info", movieHandler.Info)
}
