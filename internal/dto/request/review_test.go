package request

import (
	"net/http/httptest"
	"testing"

	"movie-review/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReviewListQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/reviews/?movie_title=Inception&rating=4&rating=5,3&search=dream+big&ordering=-rating&page=2", nil)

	q, errs := ParseReviewListQuery(r, 10)
	require.Nil(t, errs)
	assert.Equal(t, "Inception", q.Filter.MovieTitle)
	assert.Equal(t, []int{4, 5, 3}, q.Filter.Ratings)
	assert.Equal(t, []string{"dream", "big"}, q.Filter.Search)
	assert.Equal(t, []repository.OrderField{{Column: "rating", Desc: true}}, q.Filter.Ordering)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 10, q.Offset())
}

func TestParseReviewListQuery_InvalidRating(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/reviews/?rating=five", nil)

	q, errs := ParseReviewListQuery(r, 10)
	assert.Nil(t, q)
	assert.Contains(t, errs, "rating")
}

func TestNewPaginatedRequest_Defaults(t *testing.T) {
	for _, raw := range []string{"", "0", "-3", "abc"} {
		r := httptest.NewRequest("GET", "/api/reviews/?page="+raw, nil)
		p := NewPaginatedRequest(r, 12)
		assert.Equal(t, 1, p.Page, "page=%q", raw)
		assert.Equal(t, 0, p.Offset())
		assert.Equal(t, 12, p.Limit())
	}
}
