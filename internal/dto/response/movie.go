package response

import "movie-review/internal/omdb"

type MovieSearchResponse struct {
	Results []omdb.SearchResult `json:"results"`
}
