package http

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roomdesk/room-booking-backend/internal/pkg/apperror"
	"github.com/roomdesk/room-booking-backend/internal/pkg/request"
	"github.com/roomdesk/room-booking-backend/internal/pkg/response"
	"github.com/roomdesk/room-booking-backend/internal/pkg/storage"
	"github.com/roomdesk/room-booking-backend/internal/room"
)

// maxImageSize caps room image uploads at 5 MiB before decoding.
const maxImageSize = 5 << 20

type Handler struct {
	service room.Service
	storage storage.Storage
}

func NewHandler(service room.Service, st storage.Storage) *Handler {
	return &Handler{service: service, storage: st}
}

// List returns every room with its derived earliest bookable date.
// Public, so the catalogue can render without a login.
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"rooms": items})
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Feedbacks(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	feedbacks, err := h.service.Feedbacks(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FeedbackResponse, len(feedbacks))
	for i, f := range feedbacks {
		items[i] = FeedbackResponse{Feedback: f.Feedback, UserName: f.UserName}
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(c.Request.Context(), room.CreateRequest{
		Name:          body.Name,
		CapacityID:    body.CapacityID,
		AvailableFrom: parseDate(body.AvailableFrom),
		Location:      body.Location,
		Price:         body.Price,
		FeatureIDs:    body.FeatureIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(r))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var body UpdateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Update(c.Request.Context(), uri.ID, room.UpdateRequest{
		Name:          body.Name,
		CapacityID:    body.CapacityID,
		AvailableFrom: parseDate(body.AvailableFrom),
		Location:      body.Location,
		Price:         body.Price,
		FeatureIDs:    body.FeatureIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "room deleted successfully"})
}

// UploadImage replaces a room's image. The file is re-encoded to JPEG and
// bounded to 1000x1000 before it is stored under a random name.
func (h *Handler) UploadImage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds maximum size"})
		return
	}

	// Make sure the room exists before touching storage.
	if _, err := h.service.GetByID(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	normalized, err := storage.NormalizeImage(f, 1000, 1000)
	if err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "file is not a valid image"))
		return
	}

	filename := uuid.NewString() + ".jpg"
	if err := h.storage.Save(c.Request.Context(), filename, normalized); err != nil {
		response.Error(c, err)
		return
	}

	r, err := h.service.SetImage(c.Request.Context(), uri.ID, filename)
	if err != nil {
		// Keep storage consistent when the DB update fails.
		_ = h.storage.Delete(c.Request.Context(), filename)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "image uploaded successfully",
		"image":   path.Join("/uploads", filename),
		"room":    NewRoomResponse(r),
	})
}
