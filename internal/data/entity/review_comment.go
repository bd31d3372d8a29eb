package entity

import (
	"github.com/google/uuid"
)

type ReviewComment struct {
	BaseSimple
	ReviewID uuid.UUID `db:"review_id"`
	UserID   uuid.UUID `db:"user_id"`
	Content  string    `db:"content"`

	Username string `db:"username"`
}
