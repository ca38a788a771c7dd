package userDataRepo

import (
	"context"

	"attendai/models"
)

// UserDataRepository persists one schedule/records document per user.
type UserDataRepository interface {
	// Get returns the stored document. A user with nothing stored gets empty
	// collections, not an error.
	Get(ctx context.Context, userID string) (models.UserData, error)
	// Merge overwrites only the fields present in patch and returns the
	// resulting document. Last write wins.
	Merge(ctx context.Context, userID string, patch models.UserDataPatch) (models.UserData, error)
	// Clear removes everything stored for the user.
	Clear(ctx context.Context, userID string) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
