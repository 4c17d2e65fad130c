package ports

import (
	"context"

	"github.com/cityevents/events-system/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByEmail looks a user up by their unique email address.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new user. Used by out-of-band provisioning only.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
