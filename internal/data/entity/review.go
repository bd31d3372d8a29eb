package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	// HighRating is the threshold for "rated highly" in recommendations.
	HighRating = 4
)

type Review struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	MovieTitle    string    `db:"movie_title"`
	ReviewContent string    `db:"review_content"`
	Rating        int       `db:"rating"` // 1-5
	CreatedDate   time.Time `db:"created_date"`

	// joined, not stored
	Username string `db:"username"`
}
