package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	t.Run("Pending can be approved, rejected or cancelled", func(t *testing.T) {
		assert.True(t, StatusPending.CanTransitionTo(StatusApproved))
		assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
		assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	})

	t.Run("Approved can only be cancelled", func(t *testing.T) {
		assert.False(t, StatusApproved.CanTransitionTo(StatusApproved))
		assert.False(t, StatusApproved.CanTransitionTo(StatusRejected))
		assert.True(t, StatusApproved.CanTransitionTo(StatusCancelled))
	})

	t.Run("Terminal statuses allow nothing", func(t *testing.T) {
		for _, s := range []Status{StatusRejected, StatusCancelled} {
			assert.True(t, s.Terminal())
			for _, next := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled} {
				assert.False(t, s.CanTransitionTo(next), "%s -> %s should be illegal", s, next)
			}
		}
	})

	t.Run("Non-terminal statuses", func(t *testing.T) {
		assert.False(t, StatusPending.Terminal())
		assert.False(t, StatusApproved.Terminal())
	})

	t.Run("Unknown target status is illegal", func(t *testing.T) {
		assert.False(t, StatusPending.CanTransitionTo(Status("archived")))
	})
}

func TestFormatRef(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "BK20260301-000042", FormatRef(42, createdAt))
	assert.Equal(t, "BK20260301-123456", FormatRef(123456, createdAt))

	t.Run("IDs wider than six digits are not truncated", func(t *testing.T) {
		assert.Equal(t, "BK20260301-1234567", FormatRef(1234567, createdAt))
	})

	t.Run("Date is rendered in UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+9", 9*3600)
		late := time.Date(2026, 3, 1, 23, 30, 0, 0, loc) // 14:30 UTC on Mar 1
		assert.Equal(t, "BK20260301-000007", FormatRef(7, late))
	})
}
