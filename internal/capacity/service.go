package capacity

import "context"

type UpdateRequest struct {
	Capacity *int
	Hidden   *bool
}

type Service interface {
	Create(ctx context.Context, seats int) (*Capacity, error)
	List(ctx context.Context) ([]*Capacity, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Capacity, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, seats int) (*Capacity, error) {
	if seats <= 0 {
		return nil, ErrInvalidCapacity
	}

	c := &Capacity{Capacity: seats}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]*Capacity, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Capacity, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		c.Capacity = *req.Capacity
	}
	if req.Hidden != nil {
		c.Hidden = *req.Hidden
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	used, err := s.repo.UsageCount(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return ErrInUse
	}

	return s.repo.Delete(ctx, id)
}
