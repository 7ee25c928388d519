package music

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const musicColumns = `id, user_id, name, file, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, m domain.Music) (*domain.Music, error) {
	const q = `
INSERT INTO music (user_id, name, file)
VALUES ($1, $2, $3)
RETURNING ` + musicColumns
	return scanMusic(r.pool.QueryRow(ctx, q, m.UserID, m.Name, m.File))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Music, error) {
	const q = `SELECT ` + musicColumns + ` FROM music WHERE id = $1`
	return scanMusic(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Music, error) {
	const q = `SELECT ` + musicColumns + ` FROM music WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []domain.Music
	for rows.Next() {
		var m domain.Music
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.File, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		tracks = append(tracks, m)
	}
	return tracks, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id int64, m domain.Music) error {
	const q = `
UPDATE music
SET name = $2, file = $3, updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, m.Name, m.File)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM music WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMusic(row pgx.Row) (*domain.Music, error) {
	var m domain.Music
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.File, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
