package usecase

import (
	"context"
	"strings"

	"movie-review/internal/dto/response"
	"movie-review/internal/omdb"

	"go.uber.org/zap"
)

// MovieService exposes metadata lookups. No data from the source is reported
// as not-found, never as a server error.
type MovieService interface {
	Search(ctx context.Context, query string) (*response.MovieSearchResponse, error)
	Details(ctx context.Context, imdbID string) (*omdb.Movie, error)
	Info(ctx context.Context, title string) (*omdb.Movie, error)
}

type movieService struct {
	metadata omdb.MetadataClient
	log      *zap.Logger
}

func NewMovieService(metadata omdb.MetadataClient, log *zap.Logger) MovieService {
	return &movieService{
		metadata: metadata,
		log:      log.With(zap.String("service", "movie")),
	}
}

var errMovieNotFound = newError(ErrNotFound, "Movie not found")

func (s *movieService) Search(ctx context.Context, query string) (*response.MovieSearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, requiredParam("query")
	}

	results := s.metadata.Search(ctx, query)
	if results == nil {
		results = []omdb.SearchResult{}
	}
	return &response.MovieSearchResponse{Results: results}, nil
}

func (s *movieService) Details(ctx context.Context, imdbID string) (*omdb.Movie, error) {
	movie := s.metadata.FetchByIMDbID(ctx, imdbID)
	if movie == nil {
		return nil, errMovieNotFound
	}
	return movie, nil
}

func (s *movieService) Info(ctx context.Context, title string) (*omdb.Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, requiredParam("title")
	}

	movie := s.metadata.FetchByTitle(ctx, title)
	if movie == nil {
		s.log.Debug("No metadata for title", zap.String("title", title))
		return nil, errMovieNotFound
	}
	return movie, nil
}

func requiredParam(name string) error {
	return &Error{
		Kind:   ErrValidation,
		Detail: name + " parameter is required",
		Fields: map[string]string{name: "This field is required"},
	}
}
