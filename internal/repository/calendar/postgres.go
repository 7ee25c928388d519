package calendar

import (
	"context"
	"errors"
	"time"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventColumns = `id, user_id, title, start_at, end_at, COALESCE(location, ''), COALESCE(description, ''), created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, ev domain.CalendarEvent) (*domain.CalendarEvent, error) {
	const q = `
INSERT INTO calendar_events (user_id, title, start_at, end_at, location, description)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
RETURNING ` + eventColumns
	return scanEvent(r.pool.QueryRow(ctx, q, ev.UserID, ev.Title, ev.StartAt, ev.EndAt, ev.Location, ev.Description))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error) {
	const q = `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = $1`
	return scanEvent(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.CalendarEvent, error) {
	const q = `SELECT ` + eventColumns + ` FROM calendar_events WHERE user_id = $1 ORDER BY start_at`
	return r.queryEvents(ctx, q, userID)
}

func (r *postgresRepo) Search(ctx context.Context, userID int64, from, to time.Time) ([]domain.CalendarEvent, error) {
	const q = `
SELECT ` + eventColumns + `
FROM calendar_events
WHERE user_id = $1 AND start_at < $3 AND end_at >= $2
ORDER BY start_at
`
	return r.queryEvents(ctx, q, userID, from, to)
}

func (r *postgresRepo) Update(ctx context.Context, id int64, ev domain.CalendarEvent) error {
	const q = `
UPDATE calendar_events
SET title = $2, start_at = $3, end_at = $4, location = NULLIF($5, ''), description = NULLIF($6, ''), updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, ev.Title, ev.StartAt, ev.EndAt, ev.Location, ev.Description)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryEvents(ctx context.Context, q string, args ...any) ([]domain.CalendarEvent, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		var ev domain.CalendarEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Title, &ev.StartAt, &ev.EndAt, &ev.Location, &ev.Description, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.CalendarEvent, error) {
	var ev domain.CalendarEvent
	err := row.Scan(&ev.ID, &ev.UserID, &ev.Title, &ev.StartAt, &ev.EndAt, &ev.Location, &ev.Description, &ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ev, nil
}
