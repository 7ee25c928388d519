package cart

import (
	"context"

	"dollshop-backend/internal/domain"
)

// OptionItem is one clothes+color row in a replace request, with its quantity.
type OptionItem struct {
	ClothesID int64
	Color     string
	Count     int
}

// ReplaceOptionsInput rewrites a cart line and its full option set. An empty
// Options slice removes every option row while keeping the line.
type ReplaceOptionsInput struct {
	LineID    int64
	ProductID int64
	Count     int
	Options   []OptionItem
}

type Repository interface {
	Create(ctx context.Context, userID int64) (*domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	DeleteByUser(ctx context.Context, userID int64) error
	AddProduct(ctx context.Context, cartID, productID int64, count int) error
	AddProductWithOptions(ctx context.Context, cartID, productID int64, count int, selections []domain.OptionSelection) error
	UpdateLine(ctx context.Context, lineID, productID int64, count int) error
	ReplaceLineOptions(ctx context.Context, in ReplaceOptionsInput) error
	RemoveProduct(ctx context.Context, cartID, productID int64) error
	ListLines(ctx context.Context, cartID int64) ([]domain.CartLine, error)
}
