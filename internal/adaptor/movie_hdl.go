package adaptor

import (
	"net/http"

	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

// MovieHandler serves metadata lookups. The same handlers back both the
// authenticated /api routes and the public /web/api routes.
type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// Search handles GET /search-movies?query=
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}
	utils.ResponseSuccess(w, results)
}

// Details handles GET /movie-details/{imdb_id}
func (h *MovieHandler) Details(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.Details(r.Context(), pathParam(r, "imdb_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "movie details")
		return
	}
	utils.ResponseSuccess(w, movie)
}

// Info handles GET /movie-info?title=
func (h *MovieHandler) Info(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.Info(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		handleServiceError(w, h.log, err, "movie info")
		return
	}
	utils.ResponseSuccess(w, movie)
}
