package post

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postColumns = `p.id, p.writer, p.board_id, p.title, p.password, p.content, p.hit, p.state, p.secret, COALESCE(p.image, ''), u.name, p.created_at, p.updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	const q = `
INSERT INTO posts (writer, board_id, title, password, content, secret, image)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
RETURNING id, writer, board_id, title, password, content, hit, state, secret, COALESCE(image, ''), created_at, updated_at
`
	var created domain.Post
	err := r.pool.QueryRow(ctx, q, p.Writer, p.BoardID, p.Title, p.Password, p.Content, p.Secret, p.Image).Scan(
		&created.ID,
		&created.Writer,
		&created.BoardID,
		&created.Title,
		&created.Password,
		&created.Content,
		&created.Hit,
		&created.State,
		&created.Secret,
		&created.Image,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	const q = `
SELECT ` + postColumns + `
FROM posts p
JOIN users u ON u.id = p.writer
WHERE p.id = $1
`
	posts, err := r.fetchPosts(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.ErrNotFound
	}
	return &posts[0], nil
}

func (r *postgresRepo) ListByBoard(ctx context.Context, boardID int64) ([]domain.Post, error) {
	const q = `
SELECT ` + postColumns + `
FROM posts p
JOIN users u ON u.id = p.writer
WHERE p.board_id = $1
ORDER BY p.created_at DESC
`
	return r.fetchPosts(ctx, q, boardID)
}

func (r *postgresRepo) Page(ctx context.Context, boardID int64, skip, take int) ([]domain.Post, error) {
	const q = `
SELECT ` + postColumns + `
FROM posts p
JOIN users u ON u.id = p.writer
WHERE p.board_id = $1
ORDER BY p.created_at DESC
OFFSET $2 LIMIT $3
`
	return r.fetchPosts(ctx, q, boardID, skip, take)
}

func (r *postgresRepo) IncrementHit(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE posts SET hit = hit + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) error {
	const q = `
UPDATE posts
SET writer = $2, title = $3, password = $4, content = $5, secret = $6, image = NULLIF($7, ''), updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, in.Writer, in.Title, in.Password, in.Content, in.Secret, in.Image)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetState(ctx context.Context, id int64, state bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE posts SET state = $2, updated_at = now() WHERE id = $1`, id, state)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetchPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID,
			&p.Writer,
			&p.BoardID,
			&p.Title,
			&p.Password,
			&p.Content,
			&p.Hit,
			&p.State,
			&p.Secret,
			&p.Image,
			&p.WriterName,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return posts, nil
}
