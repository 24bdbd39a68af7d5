package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Insert(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Intervals returns the date ranges of all non-terminal bookings for the
	// room, with their statuses, so callers can run conflict checks and
	// availability projections over a single consistent read.
	Intervals(ctx context.Context, roomID int64) ([]Interval, error)

	UpdateDates(ctx context.Context, id int64, b *Booking) error
	UpdateStatus(ctx context.Context, id int64, status Status, rejectResponse *string) error
	UpdatePayment(ctx context.Context, id int64, status PaymentStatus) error
	UpdateFeedback(ctx context.Context, id int64, feedback string) error

	// WithRoomLock runs fn inside a transaction that holds a row lock on the
	// room, serializing concurrent check-then-act sequences for that room.
	// The Repository passed to fn is bound to the transaction. Returns
	// ErrRoomNotFound when the room does not exist.
	WithRoomLock(ctx context.Context, roomID int64, fn func(r Repository) error) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxRepository struct {
	pool *pgxpool.Pool
	db   querier
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool, db: pool}
}

func (r *pgxRepository) WithRoomLock(ctx context.Context, roomID int64, fn func(rep Repository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked int64
	if err := tx.QueryRow(ctx, `SELECT id FROM public.rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("lock room failed: %w", err)
	}

	if err := fn(&pgxRepository{pool: r.pool, db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Insert(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO public.bookings (room_id, user_id, start_date, end_date, phone_number, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRow(ctx, query,
		b.RoomID, b.UserID, b.StartDate, b.EndDate, b.PhoneNumber, b.Status, b.PaymentStatus,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("insert booking failed: %w", err)
	}

	// The reference code derives from the assigned id, so it is written in a
	// second statement. Both run inside the room-locked transaction.
	b.BookingRef = FormatRef(b.ID, b.CreatedAt)
	if _, err := r.db.Exec(ctx, `UPDATE public.bookings SET booking_ref = $1 WHERE id = $2`, b.BookingRef, b.ID); err != nil {
		return fmt.Errorf("set booking_ref failed: %w", err)
	}
	return nil
}

const bookingColumns = `
	b.id, b.room_id, r.name, r.image, r.price,
	b.user_id, u.name, u.email,
	b.start_date, b.end_date, b.status, b.payment_status, b.phone_number,
	COALESCE(b.booking_ref, ''), b.reject_response, b.feedback,
	b.created_at, b.updated_at
`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.RoomID, &b.RoomName, &b.RoomImage, &b.RoomPrice,
		&b.UserID, &b.UserName, &b.UserEmail,
		&b.StartDate, &b.EndDate, &b.Status, &b.PaymentStatus, &b.PhoneNumber,
		&b.BookingRef, &b.RejectResponse, &b.Feedback,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM public.bookings b
		JOIN public.rooms r ON b.room_id = r.id
		JOIN public.users u ON b.user_id = u.id
		WHERE b.id = $1
	`
	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListForUser(ctx context.Context, userID int64) ([]*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM public.bookings b
		JOIN public.rooms r ON b.room_id = r.id
		JOIN public.users u ON b.user_id = u.id
		WHERE b.user_id = $1
		ORDER BY b.start_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.room_id", "r.name", "r.image", "r.price",
		"b.user_id", "u.name", "u.email",
		"b.start_date", "b.end_date", "b.status", "b.payment_status", "b.phone_number",
		"COALESCE(b.booking_ref, '')", "b.reject_response", "b.feedback",
		"b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.rooms r ON b.room_id = r.id").
		Join("public.users u ON b.user_id = u.id")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.UserID != 0 {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.RoomID != 0 {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}

	query = query.OrderBy("b.start_date DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.RoomID, &b.RoomName, &b.RoomImage, &b.RoomPrice,
			&b.UserID, &b.UserName, &b.UserEmail,
			&b.StartDate, &b.EndDate, &b.Status, &b.PaymentStatus, &b.PhoneNumber,
			&b.BookingRef, &b.RejectResponse, &b.Feedback,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, rows.Err()
}

func (r *pgxRepository) Intervals(ctx context.Context, roomID int64) ([]Interval, error) {
	const query = `
		SELECT id, status, start_date, end_date
		FROM public.bookings
		WHERE room_id = $1 AND status IN ('pending', 'approved')
	`
	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("load booking intervals failed: %w", err)
	}
	defer rows.Close()

	var intervals []Interval
	for rows.Next() {
		var iv Interval
		if err := rows.Scan(&iv.BookingID, &iv.Status, &iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("scan interval failed: %w", err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func (r *pgxRepository) UpdateDates(ctx context.Context, id int64, b *Booking) error {
	const query = `
		UPDATE public.bookings
		SET start_date = $1, end_date = $2, phone_number = $3, updated_at = now()
		WHERE id = $4
	`
	ct, err := r.db.Exec(ctx, query, b.StartDate, b.EndDate, b.PhoneNumber, id)
	if err != nil {
		return fmt.Errorf("update booking dates failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status, rejectResponse *string) error {
	const query = `
		UPDATE public.bookings
		SET status = $1, reject_response = COALESCE($2, reject_response), updated_at = now()
		WHERE id = $3
	`
	ct, err := r.db.Exec(ctx, query, status, rejectResponse, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdatePayment(ctx context.Context, id int64, status PaymentStatus) error {
	ct, err := r.db.Exec(ctx, `UPDATE public.bookings SET payment_status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update payment status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateFeedback(ctx context.Context, id int64, feedback string) error {
	ct, err := r.db.Exec(ctx, `UPDATE public.bookings SET feedback = $1, updated_at = now() WHERE id = $2`, feedback, id)
	if err != nil {
		return fmt.Errorf("update feedback failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
