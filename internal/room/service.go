package room

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	Name          string
	CapacityID    int64
	AvailableFrom time.Time
	Location      string
	Price         int
	FeatureIDs    []int64
}

type UpdateRequest struct {
	Name          string
	CapacityID    int64
	AvailableFrom time.Time
	Location      string
	Price         int
	FeatureIDs    []int64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id int64) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id int64) error
	SetImage(ctx context.Context, id int64, image string) (*Room, error)
	Feedbacks(ctx context.Context, roomID int64) ([]Feedback, error)

	// EffectiveAvailableFrom is the earliest date a new booking for the room
	// may start.
	EffectiveAvailableFrom(ctx context.Context, id int64) (time.Time, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

const defaultImage = "placeholder.webp"

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.CapacityID == 0 {
		return nil, ErrInvalidCapacity
	}

	rm := &Room{
		Name:          strings.TrimSpace(req.Name),
		CapacityID:    req.CapacityID,
		AvailableFrom: req.AvailableFrom,
		Image:         defaultImage,
		Location:      req.Location,
		Price:         req.Price,
	}

	if err := s.repo.Create(ctx, rm, req.FeatureIDs); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, rm.ID)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	rooms, latestEnds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, rm := range rooms {
		rm.EffectiveAvailableFrom = ProjectAvailableFrom(rm.AvailableFrom, latestEnds[i])
	}
	return rooms, nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.CapacityID == 0 {
		return nil, ErrInvalidCapacity
	}

	rm.Name = strings.TrimSpace(req.Name)
	rm.CapacityID = req.CapacityID
	rm.AvailableFrom = req.AvailableFrom
	rm.Location = req.Location
	rm.Price = req.Price

	if err := s.repo.Update(ctx, rm, req.FeatureIDs); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	active, err := s.repo.HasFutureApprovedBookings(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return ErrActiveBookings
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) SetImage(ctx context.Context, id int64, image string) (*Room, error) {
	if err := s.repo.SetImage(ctx, id, image); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Feedbacks(ctx context.Context, roomID int64) ([]Feedback, error) {
	if _, err := s.repo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.repo.Feedbacks(ctx, roomID)
}

func (s *service) EffectiveAvailableFrom(ctx context.Context, id int64) (time.Time, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	latest, err := s.repo.LatestApprovedEnd(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	return ProjectAvailableFrom(rm.AvailableFrom, latest), nil
}
