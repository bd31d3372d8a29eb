package response

import "movie-review/pkg/utils"

// Page is the envelope of every paginated listing. Next and Previous are
// page numbers, null at either end.
type Page[T any] struct {
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	Next       *int  `json:"next"`
	Previous   *int  `json:"previous"`
	Results    T     `json:"results"`
}

func NewPage[T any](results T, page, pageSize int, count int64) *Page[T] {
	totalPages := utils.CalculateTotalPages(count, pageSize)

	p := &Page[T]{
		Count:      count,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Results:    results,
	}
	if page < totalPages {
		next := page + 1
		p.Next = &next
	}
	if page > 1 {
		prev := page - 1
		p.Previous = &prev
	}
	return p
}
