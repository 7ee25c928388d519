package device

import (
	"context"

	"dollshop-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, d domain.Device) (*domain.Device, error)
	GetByID(ctx context.Context, id int64) (*domain.Device, error)
	GetByMAC(ctx context.Context, macAddress string) (*domain.Device, error)
	List(ctx context.Context) ([]domain.Device, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Device, error)
	Update(ctx context.Context, id int64, d domain.Device) error
	SetUser(ctx context.Context, id int64, userID *int64) error
	Delete(ctx context.Context, id int64) error
}
