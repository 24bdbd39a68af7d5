package feature

import (
	"net/http"

	"github.com/roomdesk/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "feature not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "feature name is required")
	ErrInUse        = apperror.New(http.StatusBadRequest, "feature is currently used in rooms and cannot be deleted")
)

// Feature is an amenity (projector, whiteboard, ...) that rooms reference.
type Feature struct {
	ID     int64
	Name   string
	Hidden bool

	UsedCount int
	UsedRooms []string
}
