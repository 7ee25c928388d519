package post

import (
	"context"

	"dollshop-backend/internal/domain"
)

// UpdateInput rewrites the editable post fields. Password is nil unless the
// post is secret.
type UpdateInput struct {
	Writer   int64
	Title    string
	Password *string
	Content  string
	Secret   bool
	Image    string
}

type Repository interface {
	Create(ctx context.Context, p domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	ListByBoard(ctx context.Context, boardID int64) ([]domain.Post, error)
	Page(ctx context.Context, boardID int64, skip, take int) ([]domain.Post, error)
	IncrementHit(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, in UpdateInput) error
	SetState(ctx context.Context, id int64, state bool) error
	Delete(ctx context.Context, id int64) error
}
