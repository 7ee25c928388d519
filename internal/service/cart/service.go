package cart

import (
	"context"

	"dollshop-backend/internal/domain"
	cartrepo "dollshop-backend/internal/repository/cart"
)

type cartRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	AddProduct(ctx context.Context, cartID, productID int64, count int) error
	AddProductWithOptions(ctx context.Context, cartID, productID int64, count int, selections []domain.OptionSelection) error
	UpdateLine(ctx context.Context, lineID, productID int64, count int) error
	ReplaceLineOptions(ctx context.Context, in cartrepo.ReplaceOptionsInput) error
	RemoveProduct(ctx context.Context, cartID, productID int64) error
	ListLines(ctx context.Context, cartID int64) ([]domain.CartLine, error)
}

// Service validates cart requests and forwards them to the repository, which
// owns the merge semantics.
type Service struct {
	repo cartRepo
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// AddInput is a plain product-to-cart request.
type AddInput struct {
	CartID    int64 `json:"cartId" binding:"required"`
	ProductID int64 `json:"productId" binding:"required"`
	Count     int   `json:"count" binding:"required"`
}

// AddWithOptionInput adds a dressed doll: ClothesIDs and Colors are parallel
// arrays, one pair per selected outfit.
type AddWithOptionInput struct {
	CartID     int64    `json:"cartId" binding:"required"`
	ProductID  int64    `json:"productId" binding:"required"`
	Count      int      `json:"count" binding:"required"`
	ClothesIDs []int64  `json:"clothesIds" binding:"required"`
	Colors     []string `json:"colors" binding:"required"`
}

// UpdateWithOptionInput rewrites a cart line wholesale. The three arrays are
// parallel and describe the complete replacement option set.
type UpdateWithOptionInput struct {
	ProductID  int64    `json:"productId" binding:"required"`
	Count      int      `json:"count" binding:"required"`
	ClothesIDs []int64  `json:"clothesIds"`
	Colors     []string `json:"colors"`
	Counts     []int    `json:"counts"`
}

// UpdateInput changes the quantity of an existing option-free line.
type UpdateInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Count     int   `json:"count" binding:"required"`
}

// RemoveInput drops one product from the cart along with its options.
type RemoveInput struct {
	CartID    int64 `json:"cartId" binding:"required"`
	ProductID int64 `json:"productId" binding:"required"`
}

func (s *Service) FindOne(ctx context.Context, id int64) (*domain.Cart, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *Service) FindAllProducts(ctx context.Context, cartID int64) ([]domain.CartLine, error) {
	if _, err := s.repo.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	return s.repo.ListLines(ctx, cartID)
}

func (s *Service) AddProduct(ctx context.Context, in AddInput) error {
	if in.Count <= 0 {
		return domain.Invalid("count must be positive")
	}
	return s.repo.AddProduct(ctx, in.CartID, in.ProductID, in.Count)
}

func (s *Service) AddProductWithOption(ctx context.Context, in AddWithOptionInput) error {
	if in.Count <= 0 {
		return domain.Invalid("count must be positive")
	}
	selections, err := zipSelections(in.ClothesIDs, in.Colors)
	if err != nil {
		return err
	}
	if len(selections) == 0 {
		return domain.Invalid("at least one option required")
	}
	return s.repo.AddProductWithOptions(ctx, in.CartID, in.ProductID, in.Count, selections)
}

func (s *Service) UpdateProductWithOption(ctx context.Context, lineID int64, in UpdateWithOptionInput) error {
	if in.Count <= 0 {
		return domain.Invalid("count must be positive")
	}
	if len(in.ClothesIDs) != len(in.Colors) || len(in.ClothesIDs) != len(in.Counts) {
		return domain.Invalid("clothesIds, colors and counts must have equal length")
	}
	options := make([]cartrepo.OptionItem, 0, len(in.ClothesIDs))
	for i := range in.ClothesIDs {
		if in.Counts[i] <= 0 {
			return domain.Invalid("option counts must be positive")
		}
		options = append(options, cartrepo.OptionItem{
			ClothesID: in.ClothesIDs[i],
			Color:     in.Colors[i],
			Count:     in.Counts[i],
		})
	}
	return s.repo.ReplaceLineOptions(ctx, cartrepo.ReplaceOptionsInput{
		LineID:    lineID,
		ProductID: in.ProductID,
		Count:     in.Count,
		Options:   options,
	})
}

func (s *Service) UpdateAddedProduct(ctx context.Context, lineID int64, in UpdateInput) error {
	if in.Count <= 0 {
		return domain.Invalid("count must be positive")
	}
	return s.repo.UpdateLine(ctx, lineID, in.ProductID, in.Count)
}

func (s *Service) DeleteAddedProduct(ctx context.Context, in RemoveInput) error {
	return s.repo.RemoveProduct(ctx, in.CartID, in.ProductID)
}

func zipSelections(clothesIDs []int64, colors []string) ([]domain.OptionSelection, error) {
	if len(clothesIDs) != len(colors) {
		return nil, domain.Invalid("clothesIds and colors must have equal length")
	}
	selections := make([]domain.OptionSelection, 0, len(clothesIDs))
	for i := range clothesIDs {
		selections = append(selections, domain.OptionSelection{
			ClothesID: clothesIDs[i],
			Color:     colors[i],
		})
	}
	return selections, nil
}
