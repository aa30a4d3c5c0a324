package repository

import (
	"context"

	"flightboard-service/internal/domain/entity"
)

// IdentityProvider is the external auth service that owns user ids and
// email addresses. Every user-management mutation must succeed here
// before the profile store is touched.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password string) (*entity.IdentityUser, error)
	// ListUsers returns every identity record. Lookup by email is a
	// full scan over this list.
	ListUsers(ctx context.Context) ([]entity.IdentityUser, error)
	DeleteUser(ctx context.Context, userID string) error
}
