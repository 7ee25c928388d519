package productmodel

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const modelColumns = `id, product_id, name, file, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, m domain.ProductModel) (*domain.ProductModel, error) {
	const q = `
INSERT INTO product_models (product_id, name, file)
VALUES ($1, $2, $3)
RETURNING ` + modelColumns
	return scanModel(r.pool.QueryRow(ctx, q, m.ProductID, m.Name, m.File))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.ProductModel, error) {
	const q = `SELECT ` + modelColumns + ` FROM product_models WHERE id = $1`
	return scanModel(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.ProductModel, error) {
	const q = `SELECT ` + modelColumns + ` FROM product_models WHERE product_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []domain.ProductModel
	for rows.Next() {
		var m domain.ProductModel
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Name, &m.File, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id int64, m domain.ProductModel) error {
	const q = `
UPDATE product_models
SET product_id = $2, name = $3, file = $4, updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, m.ProductID, m.Name, m.File)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM product_models WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanModel(row pgx.Row) (*domain.ProductModel, error) {
	var m domain.ProductModel
	err := row.Scan(&m.ID, &m.ProductID, &m.Name, &m.File, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
