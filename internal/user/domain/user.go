package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// User is an account provisioned outside this service, only resolved here.
type User struct {
	ID       uuid.UUID
	Username string
	IsAdmin  bool
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
