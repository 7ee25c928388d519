package user

import (
	"context"

	"dollshop-backend/internal/domain"
)

// UpdateInput carries the mutable profile fields. A nil PasswordHash leaves
// the stored password untouched.
type UpdateInput struct {
	Name         string
	Phone        string
	PasswordHash *string
}

type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	SetRefreshTokenHash(ctx context.Context, id int64, hash *string) error
	Delete(ctx context.Context, id int64) error
}
