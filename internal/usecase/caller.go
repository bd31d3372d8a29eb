package usecase

import (
	"context"

	"movie-review/pkg/utils"

	"github.com/google/uuid"
)

// Caller is the identity a request runs as. The zero value is anonymous.
type Caller struct {
	ID       uuid.UUID
	Username string
}

// CallerFromContext reads the identity stored by the auth middleware.
func CallerFromContext(ctx context.Context) Caller {
	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return Caller{}
	}
	username, _ := utils.GetUsernameFromContext(ctx)
	return Caller{ID: id, Username: username}
}

func (c Caller) Authenticated() bool {
	return c.ID != uuid.Nil
}

// Owns is the authorization predicate for owner-only writes.
func (c Caller) Owns(ownerID uuid.UUID) bool {
	return c.Authenticated() && c.ID == ownerID
}

var errAuthRequired = newError(ErrUnauthenticated, "Authentication credentials were not provided.")

func (c Caller) require() error {
	if !c.Authenticated() {
		return errAuthRequired
	}
	return nil
}
