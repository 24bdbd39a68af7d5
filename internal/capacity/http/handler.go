package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomdesk/room-booking-backend/internal/capacity"
	"github.com/roomdesk/room-booking-backend/internal/pkg/request"
	"github.com/roomdesk/room-booking-backend/internal/pkg/response"
)

type Handler struct {
	service capacity.Service
}

func NewHandler(service capacity.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	capacities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CapacityResponse, len(capacities))
	for i, cp := range capacities {
		items[i] = NewCapacityResponse(cp)
	}

	c.JSON(http.StatusOK, gin.H{"capacities": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCapacityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cp, err := h.service.Create(c.Request.Context(), body.Capacity)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCapacityResponse(cp))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid capacity id"})
		return
	}

	var body UpdateCapacityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cp, err := h.service.Update(c.Request.Context(), uri.ID, capacity.UpdateRequest{
		Capacity: body.Capacity,
		Hidden:   body.Hidden,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCapacityResponse(cp))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid capacity id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "capacity deleted successfully"})
}
