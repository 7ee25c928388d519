package order

import (
	"context"
	"strings"

	"dollshop-backend/internal/domain"
	orderrepo "dollshop-backend/internal/repository/order"
)

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.PurchaseOrder, error)
	ListAll(ctx context.Context) ([]domain.PurchaseOrder, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PurchaseOrder, error)
	GetByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error)
	Update(ctx context.Context, id int64, in orderrepo.UpdateInput) error
	Delete(ctx context.Context, id int64) error
}

// Service validates checkout requests. The repository runs the actual
// checkout in one transaction so the cart drains atomically.
type Service struct {
	repo orderRepo
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ItemInput names one ordered product. OptionClothesIDs, OptionColors and
// OptionCounts are parallel arrays describing that product's selections.
type ItemInput struct {
	ProductID        int64    `json:"productId" binding:"required"`
	Count            int      `json:"count" binding:"required"`
	OptionClothesIDs []int64  `json:"clothesIds"`
	OptionColors     []string `json:"colors"`
	OptionCounts     []int    `json:"counts"`
}

// CreateInput is a checkout request for the signed-in user's cart.
type CreateInput struct {
	PostalCode string      `json:"postalCode" binding:"required"`
	Address    string      `json:"address" binding:"required"`
	Items      []ItemInput `json:"items" binding:"required"`
}

// UpdateInput rewrites an order's header fields.
type UpdateInput struct {
	PostalCode string `json:"postalCode" binding:"required"`
	Address    string `json:"address" binding:"required"`
	State      bool   `json:"state"`
}

// Create checks out the given cart items into a new order.
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (*domain.PurchaseOrder, error) {
	if strings.TrimSpace(in.Address) == "" {
		return nil, domain.Invalid("address required")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("at least one item required")
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	var options []domain.OrderItemOptions
	for _, it := range in.Items {
		if it.Count <= 0 {
			return nil, domain.Invalid("count must be positive")
		}
		if len(it.OptionClothesIDs) != len(it.OptionColors) || len(it.OptionClothesIDs) != len(it.OptionCounts) {
			return nil, domain.Invalid("clothesIds, colors and counts must have equal length")
		}
		items = append(items, domain.OrderItem{ProductID: it.ProductID, Count: it.Count})
		if len(it.OptionClothesIDs) > 0 {
			options = append(options, domain.OrderItemOptions{
				ProductID:  it.ProductID,
				ClothesIDs: it.OptionClothesIDs,
				Colors:     it.OptionColors,
				Counts:     it.OptionCounts,
			})
		}
	}

	return s.repo.Create(ctx, orderrepo.CreateInput{
		UserID:     userID,
		PostalCode: strings.TrimSpace(in.PostalCode),
		Address:    strings.TrimSpace(in.Address),
		Items:      items,
		Options:    options,
	})
}

func (s *Service) ListAll(ctx context.Context) ([]domain.PurchaseOrder, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.PurchaseOrder, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, userID int64, in UpdateInput) (*domain.PurchaseOrder, error) {
	if strings.TrimSpace(in.Address) == "" {
		return nil, domain.Invalid("address required")
	}
	err := s.repo.Update(ctx, id, orderrepo.UpdateInput{
		UserID:     userID,
		PostalCode: strings.TrimSpace(in.PostalCode),
		Address:    strings.TrimSpace(in.Address),
		State:      in.State,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
