package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomdesk/room-booking-backend/internal/auth"
	"github.com/roomdesk/room-booking-backend/internal/booking"
	"github.com/roomdesk/room-booking-backend/internal/pkg/request"
	"github.com/roomdesk/room-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetActor(c)

	req := booking.CreateRequest{
		RoomID:      body.RoomID,
		StartDate:   parseDate(body.StartDate),
		EndDate:     parseDate(body.EndDate),
		PhoneNumber: body.PhoneNumber,
	}

	b, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) ListMine(c *gin.Context) {
	actor := auth.GetActor(c)

	bookings, err := h.service.ListMine(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	actor := auth.GetActor(c)

	b, err := h.service.GetForActor(c.Request.Context(), actor, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// BookedDates returns the pending and approved date ranges of a room so the
// booking calendar can grey them out. Public, no auth required.
func (h *Handler) BookedDates(c *gin.Context) {
	var uri struct {
		RoomID int64 `uri:"roomId" binding:"required,min=1"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	intervals, err := h.service.BookedDates(c.Request.Context(), uri.RoomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookedDateResponse, len(intervals))
	for i, iv := range intervals {
		items[i] = NewBookedDateResponse(iv)
	}

	c.JSON(http.StatusOK, gin.H{"booked_dates": items})
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetActor(c)

	req := booking.UpdateRequest{
		StartDate:   parseDate(body.StartDate),
		EndDate:     parseDate(body.EndDate),
		PhoneNumber: body.PhoneNumber,
	}

	b, err := h.service.UpdatePending(c.Request.Context(), actor, uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	actor := auth.GetActor(c)

	b, err := h.service.Cancel(c.Request.Context(), actor, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled successfully", "booking": NewBookingResponse(b)})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	actor := auth.GetActor(c)

	b, err := h.service.MarkPaid(c.Request.Context(), actor, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment recorded successfully", "booking": NewBookingResponse(b)})
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body FeedbackBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetActor(c)

	if err := h.service.SubmitFeedback(c.Request.Context(), actor, uri.ID, body.Feedback); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feedback submitted successfully"})
}

// AdminList returns all bookings with optional status/user/room filters.
func (h *Handler) AdminList(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		Status:   query.Status,
		UserID:   query.UserID,
		RoomID:   query.RoomID,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

func (h *Handler) AdminGet(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// AdminSetStatus approves or rejects a pending booking.
func (h *Handler) AdminSetStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body SetStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetActor(c)

	b, err := h.service.SetStatus(c.Request.Context(), actor, uri.ID, booking.Status(body.Status), body.RejectResponse)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking " + body.Status + " successfully", "booking": NewBookingResponse(b)})
}
