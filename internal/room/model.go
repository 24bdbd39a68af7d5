package room

import (
	"net/http"
	"time"

	"github.com/roomdesk/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "room name is required")
	ErrNameTaken       = apperror.New(http.StatusBadRequest, "room name already exists")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "invalid capacity_id")
	ErrActiveBookings  = apperror.New(http.StatusBadRequest, "cannot delete room with active or future approved bookings")
)

// Room is a bookable conference room.
type Room struct {
	ID            int64
	Name          string
	CapacityID    int64
	Capacity      int // joined from the capacity tier
	AvailableFrom time.Time
	Image         string
	Location      string
	Price         int
	Features      []FeatureTag

	// EffectiveAvailableFrom is derived, never stored: the later of
	// AvailableFrom and the day after the latest approved booking end.
	EffectiveAvailableFrom time.Time
}

// FeatureTag is the minimal feature view attached to rooms.
type FeatureTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Feedback is a guest comment left on a paid booking of the room.
type Feedback struct {
	Feedback string
	UserName string
}
