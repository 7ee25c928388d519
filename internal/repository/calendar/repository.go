package calendar

import (
	"context"
	"time"

	"dollshop-backend/internal/domain"
)

// Repository stores calendar events per user. Search covers every event
// overlapping the given window.
type Repository interface {
	Create(ctx context.Context, ev domain.CalendarEvent) (*domain.CalendarEvent, error)
	GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.CalendarEvent, error)
	Search(ctx context.Context, userID int64, from, to time.Time) ([]domain.CalendarEvent, error)
	Update(ctx context.Context, id int64, ev domain.CalendarEvent) error
	Delete(ctx context.Context, id int64) error
}
