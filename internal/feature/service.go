package feature

import (
	"context"
	"strings"
)

type UpdateRequest struct {
	Name   *string
	Hidden *bool
}

type Service interface {
	Create(ctx context.Context, name string) (*Feature, error)
	List(ctx context.Context) ([]*Feature, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Feature, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*Feature, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	f := &Feature{Name: strings.TrimSpace(name)}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]*Feature, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Feature, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Hidden != nil {
		f.Hidden = *req.Hidden
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
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
