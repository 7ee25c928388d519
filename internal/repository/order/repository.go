package order

import (
	"context"

	"dollshop-backend/internal/domain"
)

// CreateInput captures a checkout request: the order header, the products
// being ordered, and their option selections keyed by product id.
type CreateInput struct {
	UserID     int64
	PostalCode string
	Address    string
	Items      []domain.OrderItem
	Options    []domain.OrderItemOptions
}

// UpdateInput rewrites an order's mutable fields wholesale.
type UpdateInput struct {
	UserID     int64
	PostalCode string
	Address    string
	State      bool
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.PurchaseOrder, error)
	ListAll(ctx context.Context) ([]domain.PurchaseOrder, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PurchaseOrder, error)
	GetByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
