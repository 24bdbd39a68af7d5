package booking

import (
	"fmt"
	"net/http"
	"time"

	"github.com/roomdesk/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound         = apperror.New(http.StatusNotFound, "room not found")
	ErrInvalidDateRange     = apperror.New(http.StatusBadRequest, "end date must be after the start date")
	ErrDatesTaken           = apperror.New(http.StatusBadRequest, "room already booked for selected dates")
	ErrApprovedConflict     = apperror.New(http.StatusConflict, "date conflict with another approved booking")
	ErrInvalidStatus        = apperror.New(http.StatusBadRequest, "invalid status")
	ErrNotPending           = apperror.New(http.StatusBadRequest, "only pending bookings can be updated")
	ErrAlreadyCancelled     = apperror.New(http.StatusBadRequest, "booking already cancelled")
	ErrCancelRejected       = apperror.New(http.StatusBadRequest, "rejected booking cannot be cancelled")
	ErrAlreadyPaid          = apperror.New(http.StatusBadRequest, "booking is already paid")
	ErrRejectReasonRequired = apperror.New(http.StatusBadRequest, "reject response is required")
	ErrNotPaid              = apperror.New(http.StatusBadRequest, "feedback can only be submitted for paid bookings")
	ErrEmptyFeedback        = apperror.New(http.StatusBadRequest, "feedback cannot be empty")
	ErrInvalidPhone         = apperror.New(http.StatusBadRequest, "phone number must be 10 digits")
	ErrPermissionDenied     = apperror.New(http.StatusForbidden, "permission denied")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
// Terminal bookings never count toward conflict checks.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo reports whether the status change is legal.
// Approve and reject require pending; cancel requires pending or approved.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusApproved, StatusRejected:
		return s == StatusPending
	case StatusCancelled:
		return s == StatusPending || s == StatusApproved
	default:
		return false
	}
}

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking represents one reservation request for a room by a user.
// Start and end dates are inclusive calendar days at UTC midnight.
type Booking struct {
	ID             int64
	RoomID         int64
	RoomName       string
	RoomImage      string
	RoomPrice      int
	UserID         int64
	UserName       string
	UserEmail      string
	StartDate      time.Time
	EndDate        time.Time
	Status         Status
	PaymentStatus  PaymentStatus
	PhoneNumber    string
	BookingRef     string
	RejectResponse *string
	Feedback       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter defines parameters for the admin booking list.
type Filter struct {
	Status   string
	UserID   int64
	RoomID   int64
	Page     int
	PageSize int
}

// FormatRef builds the human-readable booking reference from the assigned
// identifier, e.g. BK20250301-000042.
func FormatRef(id int64, createdAt time.Time) string {
	return fmt.Sprintf("BK%s-%06d", createdAt.UTC().Format("20060102"), id)
}
