package http

import (
	"time"

	"github.com/roomdesk/room-booking-backend/internal/room"
)

const dateLayout = "2006-01-02"

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

type CreateRoomBody struct {
	Name          string  `json:"name" binding:"required"`
	CapacityID    int64   `json:"capacity_id" binding:"required,min=1"`
	AvailableFrom string  `json:"available_from" binding:"required,datetime=2006-01-02"`
	Location      string  `json:"location"`
	Price         int     `json:"price" binding:"min=0"`
	FeatureIDs    []int64 `json:"feature_ids"`
}

type UpdateRoomBody struct {
	Name          string  `json:"name" binding:"required"`
	CapacityID    int64   `json:"capacity_id" binding:"required,min=1"`
	AvailableFrom string  `json:"available_from" binding:"required,datetime=2006-01-02"`
	Location      string  `json:"location"`
	Price         int     `json:"price" binding:"min=0"`
	FeatureIDs    []int64 `json:"feature_ids"`
}

type RoomResponse struct {
	ID                     int64             `json:"id"`
	Name                   string            `json:"name"`
	CapacityID             int64             `json:"capacity_id"`
	Capacity               int               `json:"capacity"`
	AvailableFrom          string            `json:"available_from"`
	EffectiveAvailableFrom string            `json:"effective_available_from"`
	Image                  string            `json:"image"`
	Location               string            `json:"location"`
	Price                  int               `json:"price"`
	Features               []room.FeatureTag `json:"features"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	features := r.Features
	if features == nil {
		features = make([]room.FeatureTag, 0)
	}

	effective := r.EffectiveAvailableFrom
	if effective.IsZero() {
		effective = r.AvailableFrom
	}

	return RoomResponse{
		ID:                     r.ID,
		Name:                   r.Name,
		CapacityID:             r.CapacityID,
		Capacity:               r.Capacity,
		AvailableFrom:          r.AvailableFrom.Format(dateLayout),
		EffectiveAvailableFrom: effective.Format(dateLayout),
		Image:                  r.Image,
		Location:               r.Location,
		Price:                  r.Price,
		Features:               features,
	}
}

type FeedbackResponse struct {
	Feedback string `json:"feedback"`
	UserName string `json:"user_name"`
}
