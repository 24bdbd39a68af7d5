package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rm *Room, featureIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Room, error)

	// List returns all rooms plus each room's latest approved booking end
	// date (nil when none), in matching order.
	List(ctx context.Context) ([]*Room, []*time.Time, error)
	Update(ctx context.Context, rm *Room, featureIDs []int64) error
	Delete(ctx context.Context, id int64) error
	SetImage(ctx context.Context, id int64, image string) error

	// LatestApprovedEnd returns the latest end date among the room's approved
	// bookings, or nil when it has none.
	LatestApprovedEnd(ctx context.Context, roomID int64) (*time.Time, error)

	// HasFutureApprovedBookings reports whether the room has an approved
	// booking ending today or later. Such rooms cannot be deleted.
	HasFutureApprovedBookings(ctx context.Context, roomID int64) (bool, error)

	Feedbacks(ctx context.Context, roomID int64) ([]Feedback, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room, featureIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create room tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO public.rooms (name, capacity_id, available_from, image, location, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, query,
		rm.Name, rm.CapacityID, rm.AvailableFrom, rm.Image, rm.Location, rm.Price,
	).Scan(&rm.ID); err != nil {
		return mapRoomWriteError(err)
	}

	if err := insertFeatures(ctx, tx, rm.ID, featureIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create room tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room, featureIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update room tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		UPDATE public.rooms
		SET name = $1, capacity_id = $2, available_from = $3, location = $4, price = $5
		WHERE id = $6
	`
	ct, err := tx.Exec(ctx, query,
		rm.Name, rm.CapacityID, rm.AvailableFrom, rm.Location, rm.Price, rm.ID,
	)
	if err != nil {
		return mapRoomWriteError(err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	// Feature assignments are replaced wholesale.
	if _, err := tx.Exec(ctx, `DELETE FROM public.room_features WHERE room_id = $1`, rm.ID); err != nil {
		return fmt.Errorf("clear room features failed: %w", err)
	}
	if err := insertFeatures(ctx, tx, rm.ID, featureIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update room tx failed: %w", err)
	}
	return nil
}

func insertFeatures(ctx context.Context, tx pgx.Tx, roomID int64, featureIDs []int64) error {
	for _, fid := range featureIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO public.room_features (room_id, feature_id) VALUES ($1, $2)`, roomID, fid,
		); err != nil {
			return fmt.Errorf("insert room feature failed: %w", err)
		}
	}
	return nil
}

func mapRoomWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrNameTaken
		case pgerrcode.ForeignKeyViolation:
			return ErrInvalidCapacity
		}
	}
	return fmt.Errorf("write room failed: %w", err)
}

const roomColumns = `
	r.id, r.name, r.capacity_id, COALESCE(c.capacity, 0), r.available_from,
	COALESCE(r.image, ''), COALESCE(r.location, ''), r.price,
	COALESCE(
		(
			SELECT json_agg(json_build_object('id', f.id, 'name', f.name))
			FROM public.room_features rf
			JOIN public.features f ON rf.feature_id = f.id
			WHERE rf.room_id = r.id AND f.hidden = false
		),
		'[]'::json
	)
`

func scanRoom(row pgx.Row, extra ...any) (*Room, error) {
	var rm Room
	var featuresJSON []byte

	dest := []any{
		&rm.ID, &rm.Name, &rm.CapacityID, &rm.Capacity, &rm.AvailableFrom,
		&rm.Image, &rm.Location, &rm.Price, &featuresJSON,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &rm.Features); err != nil {
			log.Printf("warning: failed to unmarshal features for room %d: %v", rm.ID, err)
		}
	}
	return &rm, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM public.rooms r
		LEFT JOIN public.capacities c ON r.capacity_id = c.id
		WHERE r.id = $1
	`
	rm, err := scanRoom(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return rm, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Room, []*time.Time, error) {
	query := `
		SELECT ` + roomColumns + `,
			(
				SELECT MAX(b.end_date) FROM public.bookings b
				WHERE b.room_id = r.id AND b.status = 'approved'
			)
		FROM public.rooms r
		LEFT JOIN public.capacities c ON r.capacity_id = c.id
		ORDER BY r.name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var latestEnds []*time.Time
	for rows.Next() {
		var latestEnd *time.Time
		rm, err := scanRoom(rows, &latestEnd)
		if err != nil {
			return nil, nil, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, rm)
		latestEnds = append(latestEnds, latestEnd)
	}
	return rooms, latestEnds, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetImage(ctx context.Context, id int64, image string) error {
	ct, err := r.pool.Exec(ctx, `UPDATE public.rooms SET image = $1 WHERE id = $2`, image, id)
	if err != nil {
		return fmt.Errorf("set room image failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) LatestApprovedEnd(ctx context.Context, roomID int64) (*time.Time, error) {
	const query = `
		SELECT MAX(end_date) FROM public.bookings
		WHERE room_id = $1 AND status = 'approved'
	`
	var latest *time.Time
	if err := r.pool.QueryRow(ctx, query, roomID).Scan(&latest); err != nil {
		return nil, fmt.Errorf("latest approved end failed: %w", err)
	}
	return latest, nil
}

func (r *pgxRepository) HasFutureApprovedBookings(ctx context.Context, roomID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE room_id = $1 AND status = 'approved' AND end_date >= CURRENT_DATE
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, roomID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check future approved bookings failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) Feedbacks(ctx context.Context, roomID int64) ([]Feedback, error) {
	const query = `
		SELECT b.feedback, u.name
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		WHERE b.room_id = $1 AND b.feedback IS NOT NULL AND b.feedback != ''
	`
	rows, err := r.pool.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list room feedbacks failed: %w", err)
	}
	defer rows.Close()

	var feedbacks []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.Feedback, &f.UserName); err != nil {
			return nil, fmt.Errorf("scan feedback failed: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, rows.Err()
}
