package http

import "github.com/roomdesk/room-booking-backend/internal/capacity"

type CreateCapacityBody struct {
	Capacity int `json:"capacity" binding:"required,min=1"`
}

type UpdateCapacityBody struct {
	Capacity *int  `json:"capacity" binding:"omitempty,min=1"`
	Hidden   *bool `json:"hidden"`
}

type CapacityResponse struct {
	ID        int64    `json:"id"`
	Capacity  int      `json:"capacity"`
	Hidden    bool     `json:"hidden"`
	UsedCount int      `json:"used_count"`
	UsedRooms []string `json:"used_rooms"`
}

func NewCapacityResponse(c *capacity.Capacity) CapacityResponse {
	rooms := c.UsedRooms
	if rooms == nil {
		rooms = make([]string, 0)
	}
	return CapacityResponse{
		ID:        c.ID,
		Capacity:  c.Capacity,
		Hidden:    c.Hidden,
		UsedCount: c.UsedCount,
		UsedRooms: rooms,
	}
}
