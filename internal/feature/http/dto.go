package http

import "github.com/roomdesk/room-booking-backend/internal/feature"

type CreateFeatureBody struct {
	Name string `json:"name" binding:"required"`
}

type UpdateFeatureBody struct {
	Name   *string `json:"name"`
	Hidden *bool   `json:"hidden"`
}

type FeatureResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Hidden    bool     `json:"hidden"`
	UsedCount int      `json:"used_count"`
	UsedRooms []string `json:"used_rooms"`
}

func NewFeatureResponse(f *feature.Feature) FeatureResponse {
	rooms := f.UsedRooms
	if rooms == nil {
		rooms = make([]string, 0)
	}
	return FeatureResponse{
		ID:        f.ID,
		Name:      f.Name,
		Hidden:    f.Hidden,
		UsedCount: f.UsedCount,
		UsedRooms: rooms,
	}
}
