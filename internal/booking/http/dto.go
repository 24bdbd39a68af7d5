package http

import (
	"time"

	"github.com/roomdesk/room-booking-backend/internal/booking"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD wire date into a UTC midnight time.
// Inputs are pre-validated by the binding `datetime` tag.
func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

type CreateBookingBody struct {
	RoomID      int64  `json:"room_id" binding:"required,min=1"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type UpdateBookingBody struct {
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type SetStatusBody struct {
	Status         string `json:"status" binding:"required,oneof=approved rejected"`
	RejectResponse string `json:"reject_response"`
}

type FeedbackBody struct {
	Feedback string `json:"feedback" binding:"required"`
}

// ListBookingsRequest defines query parameters for the admin booking list.
type ListBookingsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled"`
	UserID   int64  `form:"user_id" binding:"omitempty,min=1"`
	RoomID   int64  `form:"room_id" binding:"omitempty,min=1"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type RoomTag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Price int    `json:"price"`
}

type UserTag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID             int64   `json:"id"`
	BookingRef     string  `json:"booking_ref"`
	Room           RoomTag `json:"room"`
	User           UserTag `json:"user"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"payment_status"`
	PhoneNumber    string  `json:"phone_number"`
	RejectResponse *string `json:"reject_response,omitempty"`
	Feedback       *string `json:"feedback,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		BookingRef:     b.BookingRef,
		Room:           RoomTag{ID: b.RoomID, Name: b.RoomName, Image: b.RoomImage, Price: b.RoomPrice},
		User:           UserTag{ID: b.UserID, Name: b.UserName, Email: b.UserEmail},
		StartDate:      b.StartDate.Format(dateLayout),
		EndDate:        b.EndDate.Format(dateLayout),
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		PhoneNumber:    b.PhoneNumber,
		RejectResponse: b.RejectResponse,
		Feedback:       b.Feedback,
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// BookedDateResponse is one blocked date range of a room.
type BookedDateResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewBookedDateResponse(iv booking.Interval) BookedDateResponse {
	return BookedDateResponse{
		StartDate: iv.Start.Format(dateLayout),
		EndDate:   iv.End.Format(dateLayout),
	}
}
