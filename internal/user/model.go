package user

import (
	"errors"
	"time"

	"github.com/roomdesk/room-booking-backend/internal/auth"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRestricted         = errors.New("user is restricted and cannot log in")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// User represents an account in the system.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         auth.Role
	IsRestricted bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}
