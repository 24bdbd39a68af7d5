package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateWithMessage inserts the ticket and its opening message atomically.
	CreateWithMessage(ctx context.Context, t *Ticket, message string) error
	GetByID(ctx context.Context, id int64) (*Ticket, error)
	ListForUser(ctx context.Context, userID int64) ([]*Ticket, error)
	ListAll(ctx context.Context) ([]*Ticket, error)
	Messages(ctx context.Context, ticketID int64) ([]Message, error)
	AddMessage(ctx context.Context, m *Message) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateWithMessage(ctx context.Context, t *Ticket, message string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create ticket tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertTicket = `
		INSERT INTO public.support_tickets (user_id, subject, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insertTicket, t.UserID, t.Subject, t.Status).
		Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("insert ticket failed: %w", err)
	}

	const insertMessage = `
		INSERT INTO public.ticket_messages (ticket_id, sender_id, message)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, insertMessage, t.ID, t.UserID, message); err != nil {
		return fmt.Errorf("insert ticket message failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create ticket tx failed: %w", err)
	}
	return nil
}

const ticketColumns = `t.id, t.user_id, u.name, t.subject, t.status, t.created_at`

func scanTicket(row pgx.Row) (*Ticket, error) {
	var t Ticket
	if err := row.Scan(&t.ID, &t.UserID, &t.UserName, &t.Subject, &t.Status, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM public.support_tickets t
		JOIN public.users u ON t.user_id = u.id
		WHERE t.id = $1
	`
	t, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket failed: %w", err)
	}
	return t, nil
}

func (r *pgxRepository) ListForUser(ctx context.Context, userID int64) ([]*Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM public.support_tickets t
		JOIN public.users u ON t.user_id = u.id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
	`
	return r.queryTickets(ctx, query, userID)
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM public.support_tickets t
		JOIN public.users u ON t.user_id = u.id
		ORDER BY t.created_at DESC
	`
	return r.queryTickets(ctx, query)
}

func (r *pgxRepository) queryTickets(ctx context.Context, query string, args ...any) ([]*Ticket, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets failed: %w", err)
	}
	defer rows.Close()

	var tickets []*Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket failed: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *pgxRepository) Messages(ctx context.Context, ticketID int64) ([]Message, error) {
	const query = `
		SELECT m.id, m.ticket_id, m.sender_id, COALESCE(u.name, ''), m.message, m.created_at
		FROM public.ticket_messages m
		LEFT JOIN public.users u ON m.sender_id = u.id
		WHERE m.ticket_id = $1
		ORDER BY m.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket messages failed: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.TicketID, &m.SenderID, &m.SenderName, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket message failed: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *pgxRepository) AddMessage(ctx context.Context, m *Message) error {
	const query = `
		INSERT INTO public.ticket_messages (ticket_id, sender_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.pool.QueryRow(ctx, query, m.TicketID, m.SenderID, m.Message).
		Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("add ticket message failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	ct, err := r.pool.Exec(ctx, `UPDATE public.support_tickets SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update ticket status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
