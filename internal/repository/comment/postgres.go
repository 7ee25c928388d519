package comment

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentColumns = `id, writer, post_id, content, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	const q = `
INSERT INTO comments (writer, post_id, content)
VALUES ($1, $2, $3)
RETURNING ` + commentColumns
	return scanComment(r.pool.QueryRow(ctx, q, c.Writer, c.PostID, c.Content))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	const q = `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return scanComment(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	const q = `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Writer, &c.PostID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *postgresRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&count)
	return count, err
}

func (r *postgresRepo) Update(ctx context.Context, id int64, c domain.Comment) error {
	const q = `
UPDATE comments
SET writer = $2, post_id = $3, content = $4, updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, c.Writer, c.PostID, c.Content)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.Writer, &c.PostID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
