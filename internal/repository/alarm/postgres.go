package alarm

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const alarmColumns = `id, user_id, time_id, name, COALESCE(sentence, ''), COALESCE(file, ''), state, repeat, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Alarm) (*domain.Alarm, error) {
	const q = `
INSERT INTO alarms (user_id, time_id, name, sentence, file, state, repeat)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
RETURNING ` + alarmColumns
	return scanAlarm(r.pool.QueryRow(ctx, q, a.UserID, a.TimeID, a.Name, a.Sentence, a.File, a.State, a.Repeat))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Alarm, error) {
	const q = `SELECT ` + alarmColumns + ` FROM alarms WHERE id = $1`
	return scanAlarm(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Alarm, error) {
	const q = `SELECT ` + alarmColumns + ` FROM alarms WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alarms []domain.Alarm
	for rows.Next() {
		var a domain.Alarm
		if err := rows.Scan(&a.ID, &a.UserID, &a.TimeID, &a.Name, &a.Sentence, &a.File, &a.State, &a.Repeat, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		alarms = append(alarms, a)
	}
	return alarms, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id int64, a domain.Alarm) error {
	const q = `
UPDATE alarms
SET time_id = $2, name = $3, sentence = NULLIF($4, ''), file = NULLIF($5, ''), state = $6, repeat = $7, updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, a.TimeID, a.Name, a.Sentence, a.File, a.State, a.Repeat)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM alarms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAlarm(row pgx.Row) (*domain.Alarm, error) {
	var a domain.Alarm
	err := row.Scan(&a.ID, &a.UserID, &a.TimeID, &a.Name, &a.Sentence, &a.File, &a.State, &a.Repeat, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
