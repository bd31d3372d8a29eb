package entity

import (
	"github.com/google/uuid"
)

// ReviewLike is unique per (UserID, ReviewID).
type ReviewLike struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	ReviewID uuid.UUID `db:"review_id"`

	Username string `db:"username"`
}
