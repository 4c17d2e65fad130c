package ports

import (
	"context"

	"github.com/cityevents/events-system/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed bearer token
	// together with the authenticated user. Unknown email and wrong password
	// are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
