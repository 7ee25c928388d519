package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Price       int64
	Description string
	Stock       int
	Gendered    bool
	Clothes     []string
}

// Apply inserts basic seed data for manual testing. It is idempotent: boards
// upsert on their name and products are only inserted when absent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	boards := []string{"product inquiry", "q&a", "review"}
	for _, name := range boards {
		if err := ensureBoard(ctx, pool, name); err != nil {
			return fmt.Errorf("ensure board %s: %w", name, err)
		}
	}

	products := []productSeed{
		{
			Name:        "Dollsy Boy",
			Price:       49000,
			Description: "Talking companion doll, boy edition",
			Stock:       50,
			Gendered:    false,
			Clothes:     []string{"overalls", "raincoat"},
		},
		{
			Name:        "Dollsy Girl",
			Price:       49000,
			Description: "Talking companion doll, girl edition",
			Stock:       50,
			Gendered:    true,
			Clothes:     []string{"summer dress", "raincoat"},
		},
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureBoard(ctx context.Context, pool *pgxpool.Pool, name string) error {
	const q = `INSERT INTO boards (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	_, err := pool.Exec(ctx, q, name)
	return err
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const insert = `
INSERT INTO products (name, price, description, stock, gendered)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	if _, err := pool.Exec(ctx, insert, p.Name, p.Price, p.Description, p.Stock, p.Gendered); err != nil {
		return err
	}

	var productID int64
	if err := pool.QueryRow(ctx, `SELECT id FROM products WHERE name = $1`, p.Name).Scan(&productID); err != nil {
		return err
	}

	const insertClothes = `
INSERT INTO clothes (product_id, name)
SELECT $1, $2
WHERE NOT EXISTS (SELECT 1 FROM clothes WHERE product_id = $1 AND name = $2)
`
	for _, name := range p.Clothes {
		if _, err := pool.Exec(ctx, insertClothes, productID, name); err != nil {
			return err
		}
	}
	return nil
}
