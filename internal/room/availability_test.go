package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectAvailableFrom(t *testing.T) {
	staticFrom := date(2026, 1, 1)

	t.Run("No approved bookings keeps static date", func(t *testing.T) {
		got := ProjectAvailableFrom(staticFrom, nil)
		assert.Equal(t, staticFrom, got)
	})

	t.Run("Approved booking pushes availability to the day after", func(t *testing.T) {
		end := date(2026, 3, 12)
		got := ProjectAvailableFrom(staticFrom, &end)
		assert.Equal(t, date(2026, 3, 13), got)
	})

	t.Run("Static date wins when later", func(t *testing.T) {
		end := date(2025, 12, 20)
		got := ProjectAvailableFrom(staticFrom, &end)
		assert.Equal(t, staticFrom, got)
	})

	t.Run("Approved end on the day before static", func(t *testing.T) {
		end := date(2025, 12, 31)
		got := ProjectAvailableFrom(staticFrom, &end)
		// Day after is exactly the static date, not later, so static holds.
		assert.Equal(t, staticFrom, got)
	})

	t.Run("Month rollover", func(t *testing.T) {
		end := date(2026, 3, 31)
		got := ProjectAvailableFrom(staticFrom, &end)
		assert.Equal(t, date(2026, 4, 1), got)
	})
}
