package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/roomdesk/room-booking-backend/internal/auth"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, name, email string) (*User, error)
	ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, id int64, password string) error
	ListMembers(ctx context.Context) ([]*User, error)
	SetRestricted(ctx context.Context, id int64, restricted bool) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, name, email, password string) (*User, error) {
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return nil, ErrNameRequired
	}

	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Name:         cleanName,
		Email:        cleanEmail,
		PasswordHash: hash,
		Role:         auth.RoleUser,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if u.IsRestricted {
		return nil, ErrRestricted
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update must not fail the login.
	now := time.Now().UTC()
	_ = s.repo.UpdateLastLogin(ctx, u.ID, now)

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id int64, name, email string) (*User, error) {
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return nil, ErrNameRequired
	}
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if err := s.repo.UpdateProfile(ctx, id, cleanName, cleanEmail); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(u.PasswordHash, currentPassword); err != nil {
		return ErrWrongPassword
	}

	if len(newPassword) < s.minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, hash)
}

func (s *service) DeleteAccount(ctx context.Context, id int64, password string) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return ErrWrongPassword
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) ListMembers(ctx context.Context) ([]*User, error) {
	return s.repo.ListByRole(ctx, string(auth.RoleUser))
}

func (s *service) SetRestricted(ctx context.Context, id int64, restricted bool) (*User, error) {
	if err := s.repo.SetRestricted(ctx, id, restricted); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
