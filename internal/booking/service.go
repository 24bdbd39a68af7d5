package booking

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/roomdesk/room-booking-backend/internal/auth"
	"github.com/roomdesk/room-booking-backend/internal/pkg/apperror"
	"github.com/roomdesk/room-booking-backend/internal/room"
)

type CreateRequest struct {
	RoomID      int64
	StartDate   time.Time
	EndDate     time.Time
	PhoneNumber string
}

type UpdateRequest struct {
	StartDate   time.Time
	EndDate     time.Time
	PhoneNumber string
}

// Service is the only entry point allowed to mutate bookings. Every
// operation that touches a room's booking set runs its conflict check and
// write inside a single room-locked transaction.
type Service interface {
	Create(ctx context.Context, actor auth.Actor, req CreateRequest) (*Booking, error)
	GetForActor(ctx context.Context, actor auth.Actor, id int64) (*Booking, error)
	ListMine(ctx context.Context, actor auth.Actor) ([]*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	BookedDates(ctx context.Context, roomID int64) ([]Interval, error)
	UpdatePending(ctx context.Context, actor auth.Actor, id int64, req UpdateRequest) (*Booking, error)
	Cancel(ctx context.Context, actor auth.Actor, id int64) (*Booking, error)
	SetStatus(ctx context.Context, actor auth.Actor, id int64, status Status, rejectResponse string) (*Booking, error)
	MarkPaid(ctx context.Context, actor auth.Actor, id int64) (*Booking, error)
	SubmitFeedback(ctx context.Context, actor auth.Actor, id int64, text string) error
}

type service struct {
	repo        Repository
	roomService room.Service
}

func NewService(repo Repository, roomService room.Service) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
	}
}

// ErrRoomUnavailable reports the earliest date the room can be booked from.
func ErrRoomUnavailable(from time.Time) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "room not available before %s", from.Format("2006-01-02"))
}

func validPhone(p string) bool {
	if len(p) != 10 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *service) Create(ctx context.Context, actor auth.Actor, req CreateRequest) (*Booking, error) {
	// Zero-length bookings (start == end) are valid.
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if !validPhone(req.PhoneNumber) {
		return nil, ErrInvalidPhone
	}

	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	b := &Booking{
		RoomID:        req.RoomID,
		UserID:        actor.UserID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PhoneNumber:   req.PhoneNumber,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
	}

	err = s.repo.WithRoomLock(ctx, req.RoomID, func(r Repository) error {
		intervals, err := r.Intervals(ctx, req.RoomID)
		if err != nil {
			return err
		}
		if HasConflict(intervals, req.StartDate, req.EndDate, 0) {
			return ErrDatesTaken
		}
		availableFrom := room.ProjectAvailableFrom(rm.AvailableFrom, LatestApprovedEnd(intervals))
		if req.StartDate.Before(availableFrom) {
			return ErrRoomUnavailable(availableFrom)
		}
		return r.Insert(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) GetForActor(ctx context.Context, actor auth.Actor, id int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Bookings of other users are indistinguishable from missing ones.
	if !actor.CanModerate() && !actor.Owns(b.UserID) {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) ListMine(ctx context.Context, actor auth.Actor) ([]*Booking, error) {
	return s.repo.ListForUser(ctx, actor.UserID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) BookedDates(ctx context.Context, roomID int64) ([]Interval, error) {
	return s.repo.Intervals(ctx, roomID)
}

func (s *service) UpdatePending(ctx context.Context, actor auth.Actor, id int64, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(b.UserID) {
		return nil, ErrPermissionDenied
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if !validPhone(req.PhoneNumber) {
		return nil, ErrInvalidPhone
	}

	err = s.repo.WithRoomLock(ctx, b.RoomID, func(r Repository) error {
		// Re-read under the lock: an admin may have moved the booking out of
		// pending between the first read and the lock acquisition.
		fresh, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if fresh.Status != StatusPending {
			return ErrNotPending
		}

		intervals, err := r.Intervals(ctx, b.RoomID)
		if err != nil {
			return err
		}
		if HasConflict(intervals, req.StartDate, req.EndDate, id) {
			return ErrDatesTaken
		}

		fresh.StartDate = req.StartDate
		fresh.EndDate = req.EndDate
		fresh.PhoneNumber = req.PhoneNumber
		return r.UpdateDates(ctx, id, fresh)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) Cancel(ctx context.Context, actor auth.Actor, id int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanCancel(b.UserID) {
		return nil, ErrPermissionDenied
	}

	// Re-cancelling is an error, not a no-op.
	switch b.Status {
	case StatusCancelled:
		return nil, ErrAlreadyCancelled
	case StatusRejected:
		return nil, ErrCancelRejected
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled, nil); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) SetStatus(ctx context.Context, actor auth.Actor, id int64, status Status, rejectResponse string) (*Booking, error) {
	if !actor.CanModerate() {
		return nil, ErrPermissionDenied
	}
	if status != StatusApproved && status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var reason *string
	if status == StatusRejected {
		trimmed := strings.TrimSpace(rejectResponse)
		if trimmed == "" {
			return nil, ErrRejectReasonRequired
		}
		reason = &trimmed
	}

	err = s.repo.WithRoomLock(ctx, b.RoomID, func(r Repository) error {
		fresh, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !fresh.Status.CanTransitionTo(status) {
			return ErrNotPending
		}

		if status == StatusApproved {
			intervals, err := r.Intervals(ctx, b.RoomID)
			if err != nil {
				return err
			}
			approved := intervals[:0:0]
			for _, iv := range intervals {
				if iv.Status == StatusApproved {
					approved = append(approved, iv)
				}
			}
			if HasConflict(approved, fresh.StartDate, fresh.EndDate, id) {
				return ErrApprovedConflict
			}
		}

		return r.UpdateStatus(ctx, id, status, reason)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) MarkPaid(ctx context.Context, actor auth.Actor, id int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(b.UserID) {
		return nil, ErrPermissionDenied
	}
	if b.PaymentStatus == PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	if err := s.repo.UpdatePayment(ctx, id, PaymentPaid); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) SubmitFeedback(ctx context.Context, actor auth.Actor, id int64, text string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Owns(b.UserID) {
		return ErrPermissionDenied
	}
	if b.PaymentStatus != PaymentPaid {
		return ErrNotPaid
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyFeedback
	}

	// Resubmission overwrites the previous feedback.
	return s.repo.UpdateFeedback(ctx, id, trimmed)
}
