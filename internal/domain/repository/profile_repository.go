package repository

import (
	"context"
	"errors"

	"flightboard-service/internal/domain/entity"
)

// ErrProfileNotFound is the profile store's "not found" code. Callers
// that merge identity and profile data tolerate it: identity record
// present, profile absent.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the key/value profile store keyed by the
// identity-issued user id.
type ProfileRepository interface {
	Insert(ctx context.Context, profile *entity.UserProfile) error
	FindByID(ctx context.Context, userID string) (*entity.UserProfile, error)
	// ExistsUsername reports whether any profile holds the username.
	// Uniqueness is check-then-write: there is no isolation between
	// this check and a subsequent Insert.
	ExistsUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, userID string, fields map[string]any) (*entity.UserProfile, error)
	Delete(ctx context.Context, userID string) error
}
