package alarm

import (
	"context"

	"dollshop-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, a domain.Alarm) (*domain.Alarm, error)
	GetByID(ctx context.Context, id int64) (*domain.Alarm, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Alarm, error)
	Update(ctx context.Context, id int64, a domain.Alarm) error
	Delete(ctx context.Context, id int64) error
}
