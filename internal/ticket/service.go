package ticket

import (
	"context"
	"strings"

	"github.com/roomdesk/room-booking-backend/internal/auth"
)

type Service interface {
	Create(ctx context.Context, actor auth.Actor, subject, message string) (*Ticket, error)
	ListMine(ctx context.Context, actor auth.Actor) ([]*Ticket, error)
	ListAll(ctx context.Context) ([]*Ticket, error)
	Get(ctx context.Context, actor auth.Actor, id int64) (*Ticket, []Message, error)
	AddMessage(ctx context.Context, actor auth.Actor, ticketID int64, text string) (*Message, error)
	SetStatus(ctx context.Context, actor auth.Actor, id int64, status Status) (*Ticket, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, actor auth.Actor, subject, message string) (*Ticket, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, ErrSubjectRequired
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}

	t := &Ticket{
		UserID:  actor.UserID,
		Subject: strings.TrimSpace(subject),
		Status:  StatusOpen,
	}

	if err := s.repo.CreateWithMessage(ctx, t, strings.TrimSpace(message)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, t.ID)
}

func (s *service) ListMine(ctx context.Context, actor auth.Actor) ([]*Ticket, error) {
	return s.repo.ListForUser(ctx, actor.UserID)
}

func (s *service) ListAll(ctx context.Context) ([]*Ticket, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, actor auth.Actor, id int64) (*Ticket, []Message, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !actor.CanModerate() && !actor.Owns(t.UserID) {
		return nil, nil, ErrNotFound
	}

	messages, err := s.repo.Messages(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return t, messages, nil
}

func (s *service) AddMessage(ctx context.Context, actor auth.Actor, ticketID int64, text string) (*Message, error) {
	t, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !actor.CanModerate() && !actor.Owns(t.UserID) {
		return nil, ErrPermissionDenied
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrMessageRequired
	}

	m := &Message{
		TicketID: ticketID,
		SenderID: actor.UserID,
		Message:  trimmed,
	}
	if err := s.repo.AddMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) SetStatus(ctx context.Context, actor auth.Actor, id int64, status Status) (*Ticket, error) {
	if !actor.CanModerate() {
		return nil, ErrPermissionDenied
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
