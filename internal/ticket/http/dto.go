package http

import (
	"time"

	"github.com/roomdesk/room-booking-backend/internal/ticket"
)

type CreateTicketBody struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type AddMessageBody struct {
	Message string `json:"message" binding:"required"`
}

type SetStatusBody struct {
	Status string `json:"status" binding:"required,oneof=open in_progress closed"`
}

type TicketResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		UserName:  t.UserName,
		Subject:   t.Subject,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMessageResponse(m ticket.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt,
	}
}

type TicketDetailResponse struct {
	Ticket   TicketResponse    `json:"ticket"`
	Messages []MessageResponse `json:"messages"`
}
