package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomdesk/room-booking-backend/internal/auth"
)

// fakeRepository is an in-memory user store keyed by ID and email.
type fakeRepository struct {
	nextID  int64
	byID    map[int64]*User
	byEmail map[string]int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID:  1,
		byID:    make(map[int64]*User),
		byEmail: make(map[string]int64),
	}
}

func (f *fakeRepository) Create(ctx context.Context, u *User) error {
	if _, taken := f.byEmail[u.Email]; taken {
		return ErrEmailAlreadyUsed
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	clone := *u
	f.byID[u.ID] = &clone
	f.byEmail[u.Email] = u.ID
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return f.GetByID(ctx, id)
}

func (f *fakeRepository) ListByRole(ctx context.Context, role string) ([]*User, error) {
	var out []*User
	for _, u := range f.byID {
		if string(u.Role) == role {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateProfile(ctx context.Context, id int64, name, email string) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	if existing, taken := f.byEmail[email]; taken && existing != id {
		return ErrEmailAlreadyUsed
	}
	delete(f.byEmail, u.Email)
	u.Name = name
	u.Email = email
	f.byEmail[email] = id
	return nil
}

func (f *fakeRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepository) UpdateLastLogin(ctx context.Context, id int64, t time.Time) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLogin = &t
	return nil
}

func (f *fakeRepository) SetRestricted(ctx context.Context, id int64, restricted bool) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsRestricted = restricted
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id int64) error {
	u, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(f.byEmail, u.Email)
	delete(f.byID, id)
	return nil
}

// plainHasher avoids bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, plainHasher{}), repo
}

func registerUser(t *testing.T, svc Service, email string) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), "Alex Chen", email, "supersecret")
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newTestService()

		u := registerUser(t, svc, "alex@example.com")
		assert.Equal(t, "Alex Chen", u.Name)
		assert.Equal(t, auth.RoleUser, u.Role)
		assert.False(t, u.IsRestricted)
	})

	t.Run("Email is normalized", func(t *testing.T) {
		svc, _ := newTestService()

		u, err := svc.Register(ctx, "Alex", "  Alex@Example.COM ", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", u.Email)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc, _ := newTestService()
		registerUser(t, svc, "alex@example.com")

		_, err := svc.Register(ctx, "Another", "alex@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("Validation failures", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(ctx, "   ", "alex@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.Register(ctx, "Alex", "   ", "supersecret")
		assert.ErrorIs(t, err, ErrEmailRequired)

		_, err = svc.Register(ctx, "Alex", "alex@example.com", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success updates last login", func(t *testing.T) {
		svc, repo := newTestService()
		u := registerUser(t, svc, "alex@example.com")

		got, err := svc.Login(ctx, "alex@example.com", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		stored, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLogin)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, _ := newTestService()
		registerUser(t, svc, "alex@example.com")

		_, err := svc.Login(ctx, "alex@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email maps to invalid credentials", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Login(ctx, "ghost@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Restricted users cannot log in", func(t *testing.T) {
		svc, _ := newTestService()
		u := registerUser(t, svc, "alex@example.com")

		_, err := svc.SetRestricted(ctx, u.ID, true)
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alex@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrRestricted)

		// Lifting the restriction restores access.
		_, err = svc.SetRestricted(ctx, u.ID, false)
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alex@example.com", "supersecret")
		assert.NoError(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newTestService()
		u := registerUser(t, svc, "alex@example.com")

		err := svc.ChangePassword(ctx, u.ID, "supersecret", "evenmoresecret")
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alex@example.com", "evenmoresecret")
		assert.NoError(t, err)

		_, err = svc.Login(ctx, "alex@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		svc, _ := newTestService()
		u := registerUser(t, svc, "alex@example.com")

		err := svc.ChangePassword(ctx, u.ID, "wrong", "evenmoresecret")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("New password too short", func(t *testing.T) {
		svc, _ := newTestService()
		u := registerUser(t, svc, "alex@example.com")

		err := svc.ChangePassword(ctx, u.ID, "supersecret", "tiny")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires the correct password", func(t *testing.T) {
		svc, _ := newTestService()
		u := registerUser(t, svc, "alex@example.com")

		err := svc.DeleteAccount(ctx, u.ID, "wrong")
		assert.ErrorIs(t, err, ErrWrongPassword)

		err = svc.DeleteAccount(ctx, u.ID, "supersecret")
		require.NoError(t, err)

		_, err = svc.GetByID(ctx, u.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newTestService()
		u := registerUser(t, svc, "alex@example.com")

		updated, err := svc.UpdateProfile(ctx, u.ID, "Alex C.", "alexc@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alex C.", updated.Name)
		assert.Equal(t, "alexc@example.com", updated.Email)
	})

	t.Run("Cannot take another user's email", func(t *testing.T) {
		svc, _ := newTestService()
		registerUser(t, svc, "alex@example.com")
		u := registerUser(t, svc, "blair@example.com")

		_, err := svc.UpdateProfile(ctx, u.ID, "Blair", "alex@example.com")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})
}

func TestListMembers(t *testing.T) {
	svc, repo := newTestService()
	registerUser(t, svc, "alex@example.com")
	registerUser(t, svc, "blair@example.com")

	// Admins never show up in the member list.
	require.NoError(t, repo.Create(context.Background(), &User{
		Name:  "Root",
		Email: "root@example.com",
		Role:  auth.RoleAdmin,
	}))

	members, err := svc.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, auth.RoleUser, m.Role)
	}
}
