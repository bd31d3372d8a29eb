package entity

import (
	"github.com/google/uuid"
)

type UserProfile struct {
	ID     uuid.UUID `db:"id"`
	UserID uuid.UUID `db:"user_id"`
	Bio    *string   `db:"bio"`
	Avatar *string   `db:"avatar"`

	Username string `db:"username"`
}
