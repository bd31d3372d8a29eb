package utils

import "math"

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset saturates at math.MaxInt instead of overflowing on huge pages.
func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// PageBounds returns the [start, end) slice bounds of page within total items.
func PageBounds(total, page, perPage int) (int, int) {
	start := CalculateOffset(page, perPage)
	if start > total {
		start = total
	}
	if start < 0 {
		start = 0
	}
	end := total
	if perPage > 0 && perPage < total-start {
		end = start + perPage
	}
	return start, end
}
