package cart

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, userID int64) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (user_id)
VALUES ($1)
RETURNING id, user_id, created_at
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	const q = `
SELECT id, user_id, created_at
FROM carts
WHERE id = $1
`
	return r.fetchCart(ctx, q, id)
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	const q = `
SELECT id, user_id, created_at
FROM carts
WHERE user_id = $1
`
	cart, err := r.fetchCart(ctx, q, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrCartNotFound
	}
	return cart, err
}

func (r *postgresRepo) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}

// AddProduct merges a bare product into the cart: the line's count grows by
// the supplied count, or a new line is inserted. The upsert is a single
// statement, so concurrent adds for the same product cannot lose increments.
func (r *postgresRepo) AddProduct(ctx context.Context, cartID, productID int64, count int) error {
	const q = `
INSERT INTO cart_lines (cart_id, product_id, count)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET count = cart_lines.count + EXCLUDED.count
`
	if _, err := r.pool.Exec(ctx, q, cartID, productID, count); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCartNotFound
		}
		return err
	}
	return nil
}

// AddProductWithOptions merges a product plus its clothes/color selections.
// The line count is only set when the line is first inserted; selections merge
// on the full (line, clothes, color) identity, each occurrence adding one.
func (r *postgresRepo) AddProductWithOptions(ctx context.Context, cartID, productID int64, count int, selections []domain.OptionSelection) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var lineID int64
	err = tx.QueryRow(ctx, `
INSERT INTO cart_lines (cart_id, product_id, count)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET count = cart_lines.count
RETURNING id
`, cartID, productID, count).Scan(&lineID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCartNotFound
		}
		return err
	}

	for _, sel := range selections {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_line_options (cart_line_id, clothes_id, color, count)
VALUES ($1, $2, $3, 1)
ON CONFLICT (cart_line_id, clothes_id, color) DO UPDATE
SET count = cart_line_options.count + 1
`, lineID, sel.ClothesID, sel.Color); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) UpdateLine(ctx context.Context, lineID, productID int64, count int) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_lines
SET product_id = $2, count = $3
WHERE id = $1
`, lineID, productID, count)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCartLineNotFound
	}
	return nil
}

// ReplaceLineOptions rewrites the line's fields and replaces its option rows
// wholesale with the requested set, all inside one transaction.
func (r *postgresRepo) ReplaceLineOptions(ctx context.Context, in ReplaceOptionsInput) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
UPDATE cart_lines
SET product_id = $2, count = $3
WHERE id = $1
`, in.LineID, in.ProductID, in.Count)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCartLineNotFound
	}

	if _, err := tx.Exec(ctx, `
DELETE FROM cart_line_options
WHERE cart_line_id = $1
`, in.LineID); err != nil {
		return err
	}

	for _, opt := range in.Options {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_line_options (cart_line_id, clothes_id, color, count)
VALUES ($1, $2, $3, $4)
`, in.LineID, opt.ClothesID, opt.Color, opt.Count); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveProduct(ctx context.Context, cartID, productID int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := removeLine(ctx, tx, cartID, productID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) ListLines(ctx context.Context, cartID int64) ([]domain.CartLine, error) {
	lines, err := fetchLines(ctx, r.pool, cartID)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// removeLine deletes a cart line and its option rows. The option delete is
// explicit even though the schema cascades, so the same helper works inside
// checkout transactions that must observe every row they touch.
func removeLine(ctx context.Context, tx pgx.Tx, cartID, productID int64) error {
	var lineID int64
	err := tx.QueryRow(ctx, `
SELECT id
FROM cart_lines
WHERE cart_id = $1 AND product_id = $2
`, cartID, productID).Scan(&lineID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCartLineNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_line_options WHERE cart_line_id = $1`, lineID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1`, lineID); err != nil {
		return err
	}
	return nil
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func fetchLines(ctx context.Context, q queryer, cartID int64) ([]domain.CartLine, error) {
	const linesQuery = `
SELECT cl.id, cl.cart_id, cl.product_id, cl.count,
       p.id, p.name, p.price, p.description, p.stock, p.gendered, COALESCE(p.image, ''), p.created_at, p.updated_at
FROM cart_lines cl
JOIN products p ON p.id = cl.product_id
WHERE cl.cart_id = $1
ORDER BY cl.id ASC
`
	rows, err := q.Query(ctx, linesQuery, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	byID := make(map[int64]int)
	for rows.Next() {
		var line domain.CartLine
		var product domain.Product
		if err := rows.Scan(
			&line.ID,
			&line.CartID,
			&line.ProductID,
			&line.Count,
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Description,
			&product.Stock,
			&product.Gendered,
			&product.Image,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		line.Product = &product
		byID[line.ID] = len(lines)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	const optionsQuery = `
SELECT o.id, o.cart_line_id, o.clothes_id, o.color, o.count
FROM cart_line_options o
JOIN cart_lines cl ON cl.id = o.cart_line_id
WHERE cl.cart_id = $1
ORDER BY o.id ASC
`
	optRows, err := q.Query(ctx, optionsQuery, cartID)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var opt domain.CartLineOption
		if err := optRows.Scan(&opt.ID, &opt.CartLineID, &opt.ClothesID, &opt.Color, &opt.Count); err != nil {
			return nil, err
		}
		if idx, ok := byID[opt.CartLineID]; ok {
			lines[idx].Options = append(lines[idx].Options, opt)
		}
	}
	if err := optRows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *postgresRepo) fetchCart(ctx context.Context, cartQuery string, arg any) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, arg).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	lines, err := fetchLines(ctx, r.pool, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Lines = lines
	return &cart, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
