package capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Capacity) error
	GetByID(ctx context.Context, id int64) (*Capacity, error)
	List(ctx context.Context) ([]*Capacity, error)
	Update(ctx context.Context, c *Capacity) error
	Delete(ctx context.Context, id int64) error

	// UsageCount reports how many rooms reference the capacity.
	UsageCount(ctx context.Context, id int64) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Capacity) error {
	const query = `
		INSERT INTO public.capacities (capacity, hidden)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, c.Capacity, c.Hidden).Scan(&c.ID); err != nil {
		return fmt.Errorf("create capacity failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Capacity, error) {
	const query = `
		SELECT id, capacity, hidden
		FROM public.capacities
		WHERE id = $1
	`
	var c Capacity
	if err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Capacity, &c.Hidden); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get capacity failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Capacity, error) {
	const query = `
		SELECT
			c.id, c.capacity, c.hidden,
			COUNT(r.id),
			COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.id IS NOT NULL), '{}')
		FROM public.capacities c
		LEFT JOIN public.rooms r ON c.id = r.capacity_id
		GROUP BY c.id
		ORDER BY c.capacity ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list capacities failed: %w", err)
	}
	defer rows.Close()

	var capacities []*Capacity
	for rows.Next() {
		var c Capacity
		if err := rows.Scan(&c.ID, &c.Capacity, &c.Hidden, &c.UsedCount, &c.UsedRooms); err != nil {
			return nil, fmt.Errorf("scan capacity failed: %w", err)
		}
		capacities = append(capacities, &c)
	}
	return capacities, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, c *Capacity) error {
	const query = `
		UPDATE public.capacities
		SET capacity = $1, hidden = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, c.Capacity, c.Hidden, c.ID)
	if err != nil {
		return fmt.Errorf("update capacity failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.capacities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete capacity failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UsageCount(ctx context.Context, id int64) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM public.rooms WHERE capacity_id = $1`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count capacity usage failed: %w", err)
	}
	return count, nil
}
