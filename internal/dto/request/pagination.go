package request

import (
	"net/http"

	"movie-review/pkg/utils"
)

// PaginatedRequest is a page-numbered slice of a list with a fixed page size.
type PaginatedRequest struct {
	Page    int
	PerPage int
}

// NewPaginatedRequest reads ?page= from r; missing or invalid values fall back to 1.
func NewPaginatedRequest(r *http.Request, perPage int) PaginatedRequest {
	return PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: perPage,
	}
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 10
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}
