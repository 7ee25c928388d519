package comment

import (
	"context"

	"dollshop-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	Update(ctx context.Context, id int64, c domain.Comment) error
	Delete(ctx context.Context, id int64) error
}
