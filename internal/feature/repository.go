package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Feature) error
	GetByID(ctx context.Context, id int64) (*Feature, error)
	List(ctx context.Context) ([]*Feature, error)
	Update(ctx context.Context, f *Feature) error
	Delete(ctx context.Context, id int64) error

	// UsageCount reports how many room assignments reference the feature.
	UsageCount(ctx context.Context, id int64) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Feature) error {
	const query = `
		INSERT INTO public.features (name, hidden)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, f.Name, f.Hidden).Scan(&f.ID); err != nil {
		return fmt.Errorf("create feature failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Feature, error) {
	const query = `
		SELECT id, name, hidden
		FROM public.features
		WHERE id = $1
	`
	var f Feature
	if err := r.pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Hidden); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feature failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Feature, error) {
	const query = `
		SELECT
			f.id, f.name, f.hidden,
			COUNT(rf.room_id),
			COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.id IS NOT NULL), '{}')
		FROM public.features f
		LEFT JOIN public.room_features rf ON f.id = rf.feature_id
		LEFT JOIN public.rooms r ON rf.room_id = r.id
		GROUP BY f.id
		ORDER BY f.name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list features failed: %w", err)
	}
	defer rows.Close()

	var features []*Feature
	for rows.Next() {
		var f Feature
		if err := rows.Scan(&f.ID, &f.Name, &f.Hidden, &f.UsedCount, &f.UsedRooms); err != nil {
			return nil, fmt.Errorf("scan feature failed: %w", err)
		}
		features = append(features, &f)
	}
	return features, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, f *Feature) error {
	const query = `
		UPDATE public.features
		SET name = $1, hidden = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, f.Name, f.Hidden, f.ID)
	if err != nil {
		return fmt.Errorf("update feature failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feature failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UsageCount(ctx context.Context, id int64) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM public.room_features WHERE feature_id = $1`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count feature usage failed: %w", err)
	}
	return count, nil
}
