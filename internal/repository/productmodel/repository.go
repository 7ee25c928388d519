package productmodel

import (
	"context"

	"dollshop-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m domain.ProductModel) (*domain.ProductModel, error)
	GetByID(ctx context.Context, id int64) (*domain.ProductModel, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.ProductModel, error)
	Update(ctx context.Context, id int64, m domain.ProductModel) error
	Delete(ctx context.Context, id int64) error
}
