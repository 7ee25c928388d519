package clothes

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clothesColumns = `id, product_id, name, COALESCE(file, ''), created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Clothes) (*domain.Clothes, error) {
	const q = `
INSERT INTO clothes (product_id, name, file)
VALUES ($1, $2, NULLIF($3, ''))
RETURNING ` + clothesColumns
	return scanClothes(r.pool.QueryRow(ctx, q, c.ProductID, c.Name, c.File))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Clothes, error) {
	const q = `SELECT ` + clothesColumns + ` FROM clothes WHERE id = $1`
	return scanClothes(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Clothes, error) {
	const q = `SELECT ` + clothesColumns + ` FROM clothes WHERE product_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Clothes
	for rows.Next() {
		var c domain.Clothes
		if err := rows.Scan(&c.ID, &c.ProductID, &c.Name, &c.File, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id int64, c domain.Clothes) error {
	const q = `
UPDATE clothes
SET product_id = $2, name = $3, file = NULLIF($4, ''), updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, c.ProductID, c.Name, c.File)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM clothes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClothes(row pgx.Row) (*domain.Clothes, error) {
	var c domain.Clothes
	err := row.Scan(&c.ID, &c.ProductID, &c.Name, &c.File, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
