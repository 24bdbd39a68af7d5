package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateAccessToken(42, "alex@example.com", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ParseAndValidate(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
	assert.Equal(t, string(RoleAdmin), claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTRejectsBadTokens(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("Garbage token", func(t *testing.T) {
		_, err := manager.ParseAndValidate("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		otherManager := NewJWTManager("other-secret", time.Hour)
		token, err := otherManager.GenerateAccessToken(1, "a@b.c", RoleUser)
		require.NoError(t, err)

		_, err = manager.ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		expiredManager := NewJWTManager("test-secret", -time.Minute)
		token, err := expiredManager.GenerateAccessToken(1, "a@b.c", RoleUser)
		require.NoError(t, err)

		_, err = manager.ParseAndValidate(token)
		assert.Error(t, err)
	})
}

func TestActorCapabilities(t *testing.T) {
	member := Actor{UserID: 10, Role: RoleUser}
	admin := Actor{UserID: 1, Role: RoleAdmin}

	assert.False(t, member.CanModerate())
	assert.True(t, admin.CanModerate())

	assert.True(t, member.Owns(10))
	assert.False(t, member.Owns(11))

	t.Run("Cancel rights", func(t *testing.T) {
		assert.True(t, member.CanCancel(10), "owner cancels own booking")
		assert.False(t, member.CanCancel(11), "member cannot cancel others")
		assert.True(t, admin.CanCancel(10), "admin cancels any booking")
	})
}
