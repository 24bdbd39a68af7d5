package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomdesk/room-booking-backend/internal/feature"
	"github.com/roomdesk/room-booking-backend/internal/pkg/request"
	"github.com/roomdesk/room-booking-backend/internal/pkg/response"
)

type Handler struct {
	service feature.Service
}

func NewHandler(service feature.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	features, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FeatureResponse, len(features))
	for i, f := range features {
		items[i] = NewFeatureResponse(f)
	}

	c.JSON(http.StatusOK, gin.H{"features": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFeatureBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), body.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewFeatureResponse(f))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feature id"})
		return
	}

	var body UpdateFeatureBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, feature.UpdateRequest{
		Name:   body.Name,
		Hidden: body.Hidden,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewFeatureResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feature id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feature deleted successfully"})
}
