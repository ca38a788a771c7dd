package userRepo

import (
	"context"
	"errors"

	"attendai/models"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by their email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// SetTokenHash stores the hash of the user's current session token.
	SetTokenHash(ctx context.Context, id, tokenHash string) error
}
