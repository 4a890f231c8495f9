package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the normalized email already exists.
	ErrEmailTaken = errors.New("user exists")
)

// Repo defines persistence operations for user accounts. Create must be an
// atomic insert-if-absent keyed by the lowercased email; callers rely on it
// instead of a separate existence check.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
}
