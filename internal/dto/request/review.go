package request

import (
	"net/http"
	"strconv"
	"strings"

	"movie-review/internal/data/repository"
)

// ReviewRequest is the full representation accepted on create and PUT.
type ReviewRequest struct {
	MovieTitle    string `json:"movie_title" validate:"required,max=255"`
	ReviewContent string `json:"review_content" validate:"required"`
	Rating        *int   `json:"rating" validate:"required,min=1,max=5"`
}

// PatchReviewRequest carries only the fields being changed.
type PatchReviewRequest struct {
	MovieTitle    *string `json:"movie_title,omitempty" validate:"omitempty,min=1,max=255"`
	ReviewContent *string `json:"review_content,omitempty" validate:"omitempty,min=1"`
	Rating        *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

func (r *ReviewRequest) Patch() *PatchReviewRequest {
	return &PatchReviewRequest{
		MovieTitle:    &r.MovieTitle,
		ReviewContent: &r.ReviewContent,
		Rating:        r.Rating,
	}
}

// ReviewListQuery is the parsed query string of a review listing.
type ReviewListQuery struct {
	Filter repository.ReviewFilter
	PaginatedRequest
}

// ParseReviewListQuery reads movie_title, rating (repeatable or comma list),
// search, ordering and page. Invalid rating values are reported per field.
func ParseReviewListQuery(r *http.Request, perPage int) (*ReviewListQuery, map[string]string) {
	q := r.URL.Query()

	filter := repository.ReviewFilter{
		MovieTitle: strings.TrimSpace(q.Get("movie_title")),
		Search:     strings.Fields(q.Get("search")),
		Ordering:   repository.ParseReviewOrdering(q.Get("ordering")),
	}

	for _, raw := range q["rating"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			rating, err := strconv.Atoi(part)
			if err != nil {
				return nil, map[string]string{"rating": "Enter a whole number."}
			}
			filter.Ratings = append(filter.Ratings, rating)
		}
	}

	return &ReviewListQuery{
		Filter:           filter,
		PaginatedRequest: NewPaginatedRequest(r, perPage),
	}, nil
}
