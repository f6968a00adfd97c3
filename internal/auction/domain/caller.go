package domain

import "github.com/google/uuid"

// Caller is the identity on whose behalf an operation runs. The zero value is
// an anonymous caller.
type Caller struct {
	UserID  uuid.UUID
	IsAdmin bool
}

func (c Caller) Authenticated() bool {
	return c.UserID != uuid.Nil
}
