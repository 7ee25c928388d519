package order

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// Create snapshots the ordered cart lines into a purchase order and drains
// them from the cart, all in one transaction. Any failure rolls the whole
// order back, so a partially-created order or partially-drained cart can never
// persist.
func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.PurchaseOrder, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var order domain.PurchaseOrder
	err = tx.QueryRow(ctx, `
INSERT INTO purchase_orders (user_id, postal_code, address)
VALUES ($1, $2, $3)
RETURNING id, user_id, postal_code, address, state, created_at, updated_at
`, in.UserID, in.PostalCode, in.Address).Scan(
		&order.ID,
		&order.UserID,
		&order.PostalCode,
		&order.Address,
		&order.State,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	var cartID int64
	err = tx.QueryRow(ctx, `SELECT id FROM carts WHERE user_id = $1`, in.UserID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}

	for _, item := range in.Items {
		var lineID int64
		err = tx.QueryRow(ctx, `
INSERT INTO order_lines (order_id, product_id, count)
VALUES ($1, $2, $3)
RETURNING id
`, order.ID, item.ProductID, item.Count).Scan(&lineID)
		if err != nil {
			return nil, err
		}

		// Option selections are copied verbatim, never merged.
		for _, opts := range in.Options {
			if opts.ProductID != item.ProductID {
				continue
			}
			for j, clothesID := range opts.ClothesIDs {
				if _, err := tx.Exec(ctx, `
INSERT INTO order_line_options (order_line_id, clothes_id, color, count)
VALUES ($1, $2, $3, $4)
`, lineID, clothesID, opts.Colors[j], opts.Counts[j]); err != nil {
					return nil, err
				}
			}
		}

		if err := drainCartLine(ctx, tx, cartID, item.ProductID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &order, nil
}

// drainCartLine removes the ordered product from the cart together with its
// option rows. Ordering a product that is not in the cart fails the checkout.
func drainCartLine(ctx context.Context, tx pgx.Tx, cartID, productID int64) error {
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

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.PurchaseOrder, error) {
	const q = `
SELECT id, user_id, postal_code, address, state, created_at, updated_at
FROM purchase_orders
ORDER BY created_at DESC
`
	return r.fetchOrders(ctx, q)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.PurchaseOrder, error) {
	const q = `
SELECT id, user_id, postal_code, address, state, created_at, updated_at
FROM purchase_orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	return r.fetchOrders(ctx, q, userID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	const q = `
SELECT id, user_id, postal_code, address, state, created_at, updated_at
FROM purchase_orders
WHERE id = $1
`
	orders, err := r.fetchOrders(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNotFound
	}
	return &orders[0], nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE purchase_orders
SET user_id = $2, postal_code = $3, address = $4, state = $5, updated_at = now()
WHERE id = $1
`, id, in.UserID, in.PostalCode, in.Address, in.State)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the order lines then the order. Option rows go with their
// lines via the schema cascade.
func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		return err
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) fetchOrders(ctx context.Context, query string, args ...any) ([]domain.PurchaseOrder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.PurchaseOrder
	byID := make(map[int64]int)
	var ids []int64
	for rows.Next() {
		var o domain.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.UserID, &o.PostalCode, &o.Address, &o.State, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		byID[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	const linesQuery = `
SELECT ol.id, ol.order_id, ol.product_id, ol.count,
       p.id, p.name, p.price, p.description, p.stock, p.gendered, COALESCE(p.image, ''), p.created_at, p.updated_at
FROM order_lines ol
JOIN products p ON p.id = ol.product_id
WHERE ol.order_id = ANY($1)
ORDER BY ol.id ASC
`
	lineRows, err := r.pool.Query(ctx, linesQuery, ids)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	lineIdx := make(map[int64][2]int)
	for lineRows.Next() {
		var line domain.OrderLine
		var product domain.Product
		if err := lineRows.Scan(
			&line.ID,
			&line.OrderID,
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
		oi := byID[line.OrderID]
		lineIdx[line.ID] = [2]int{oi, len(orders[oi].Lines)}
		orders[oi].Lines = append(orders[oi].Lines, line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}

	const optionsQuery = `
SELECT o.id, o.order_line_id, o.clothes_id, o.color, o.count
FROM order_line_options o
JOIN order_lines ol ON ol.id = o.order_line_id
WHERE ol.order_id = ANY($1)
ORDER BY o.id ASC
`
	optRows, err := r.pool.Query(ctx, optionsQuery, ids)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var opt domain.OrderLineOption
		if err := optRows.Scan(&opt.ID, &opt.OrderLineID, &opt.ClothesID, &opt.Color, &opt.Count); err != nil {
			return nil, err
		}
		if pos, ok := lineIdx[opt.OrderLineID]; ok {
			line := &orders[pos[0]].Lines[pos[1]]
			line.Options = append(line.Options, opt)
		}
	}
	if err := optRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
