package music

import (
	"context"

	"dollshop-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m domain.Music) (*domain.Music, error)
	GetByID(ctx context.Context, id int64) (*domain.Music, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Music, error)
	Update(ctx context.Context, id int64, m domain.Music) error
	Delete(ctx context.Context, id int64) error
}
