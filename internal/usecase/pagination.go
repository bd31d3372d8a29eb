package usecase

import (
	"movie-review/internal/dto/request"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
)

var errInvalidPage = newError(ErrNotFound, "Invalid page.")

// checkPage rejects a page number past the last page. An empty result still
// serves page 1.
func checkPage(p request.PaginatedRequest, count int64) error {
	if p.Page > max(1, utils.CalculateTotalPages(count, p.Limit())) {
		return errInvalidPage
	}
	return nil
}

// parseID maps a malformed id to not-found, same as an unknown id.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errNotFound
	}
	return id, nil
}
