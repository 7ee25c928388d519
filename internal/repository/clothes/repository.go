package clothes

import (
	"context"

	"dollshop-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Clothes) (*domain.Clothes, error)
	GetByID(ctx context.Context, id int64) (*domain.Clothes, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Clothes, error)
	Update(ctx context.Context, id int64, c domain.Clothes) error
	Delete(ctx context.Context, id int64) error
}
