package capacity

import (
	"net/http"

	"github.com/roomdesk/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "capacity not found")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be a positive number")
	ErrInUse           = apperror.New(http.StatusBadRequest, "capacity is currently used in rooms and cannot be deleted")
)

// Capacity is a seating tier that rooms reference.
type Capacity struct {
	ID       int64
	Capacity int
	Hidden   bool

	// Usage summary for admin views.
	UsedCount int
	UsedRooms []string
}
