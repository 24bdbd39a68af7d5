package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomdesk/room-booking-backend/internal/auth"
	"github.com/roomdesk/room-booking-backend/internal/pkg/request"
	"github.com/roomdesk/room-booking-backend/internal/pkg/response"
	"github.com/roomdesk/room-booking-backend/internal/ticket"
)

type Handler struct {
	service ticket.Service
}

func NewHandler(service ticket.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateTicketBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetActor(c)

	t, err := h.service.Create(c.Request.Context(), actor, body.Subject, body.Message)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewTicketResponse(t))
}

func (h *Handler) ListMine(c *gin.Context) {
	actor := auth.GetActor(c)

	tickets, err := h.service.ListMine(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		items[i] = NewTicketResponse(t)
	}

	c.JSON(http.StatusOK, gin.H{"tickets": items})
}

// Get returns a ticket with its full message thread.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	actor := auth.GetActor(c)

	t, messages, err := h.service.Get(c.Request.Context(), actor, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	msgs := make([]MessageResponse, len(messages))
	for i, m := range messages {
		msgs[i] = NewMessageResponse(m)
	}

	c.JSON(http.StatusOK, TicketDetailResponse{Ticket: NewTicketResponse(t), Messages: msgs})
}

func (h *Handler) AddMessage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	var body AddMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetActor(c)

	m, err := h.service.AddMessage(c.Request.Context(), actor, uri.ID, body.Message)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewMessageResponse(*m))
}

// AdminList returns every ticket regardless of owner.
func (h *Handler) AdminList(c *gin.Context) {
	tickets, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		items[i] = NewTicketResponse(t)
	}

	c.JSON(http.StatusOK, gin.H{"tickets": items})
}

func (h *Handler) AdminSetStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	var body SetStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetActor(c)

	t, err := h.service.SetStatus(c.Request.Context(), actor, uri.ID, ticket.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTicketResponse(t))
}
