package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")

// ErrMissingSecret is returned when token signing is attempted without a
// configured signing key. Login must fail rather than mint an unsigned token.
var ErrMissingSecret = errors.New("jwt signing secret is not configured")

// User models an authenticated actor. Accounts are provisioned out of band;
// there is no self-service registration endpoint.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"not null;default:user"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user may perform mutating event operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
