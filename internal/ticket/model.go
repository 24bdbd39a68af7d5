package ticket

import (
	"net/http"
	"time"

	"github.com/roomdesk/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "ticket not found")
	ErrSubjectRequired  = apperror.New(http.StatusBadRequest, "subject is required")
	ErrMessageRequired  = apperror.New(http.StatusBadRequest, "message is required")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid ticket status")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Status tracks the handling state of a support ticket.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusClosed
}

// Ticket is a support request raised by a user.
type Ticket struct {
	ID        int64
	UserID    int64
	UserName  string
	Subject   string
	Status    Status
	CreatedAt time.Time
}

// Message is one entry in a ticket's conversation thread.
type Message struct {
	ID         int64
	TicketID   int64
	SenderID   int64
	SenderName string
	Message    string
	CreatedAt  time.Time
}
