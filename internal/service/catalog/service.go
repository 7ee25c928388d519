package catalog

import (
	"context"
	"strings"

	"dollshop-backend/internal/domain"
	clothesrepo "dollshop-backend/internal/repository/clothes"
	productrepo "dollshop-backend/internal/repository/product"
	modelrepo "dollshop-backend/internal/repository/productmodel"
)

// Service groups the product catalog: products, their clothes variants and
// their 3D model assets.
type Service struct {
	products productrepo.Repository
	clothes  clothesrepo.Repository
	models   modelrepo.Repository
}

func New(products productrepo.Repository, clothes clothesrepo.Repository, models modelrepo.Repository) *Service {
	return &Service{products: products, clothes: clothes, models: models}
}

// ProductInput carries product create/update payloads.
type ProductInput struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
	Gendered    bool   `json:"gendered"`
	Image       string `json:"image"`
}

// ClothesInput carries clothes create/update payloads.
type ClothesInput struct {
	ProductID int64  `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	File      string `json:"file"`
}

// ModelInput carries product model create/update payloads.
type ModelInput struct {
	ProductID int64  `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	File      string `json:"file" binding:"required"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("name required")
	}
	if in.Price < 0 {
		return domain.Invalid("price must not be negative")
	}
	if in.Stock < 0 {
		return domain.Invalid("stock must not be negative")
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		Stock:       in.Stock,
		Gendered:    in.Gendered,
		Image:       in.Image,
	})
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	err := s.products.Update(ctx, id, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		Stock:       in.Stock,
		Gendered:    in.Gendered,
		Image:       in.Image,
	})
	if err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}

func (s *Service) CreateClothes(ctx context.Context, in ClothesInput) (*domain.Clothes, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name required")
	}
	return s.clothes.Create(ctx, domain.Clothes{
		ProductID: in.ProductID,
		Name:      strings.TrimSpace(in.Name),
		File:      in.File,
	})
}

func (s *Service) GetClothes(ctx context.Context, id int64) (*domain.Clothes, error) {
	return s.clothes.GetByID(ctx, id)
}

func (s *Service) ListClothesByProduct(ctx context.Context, productID int64) ([]domain.Clothes, error) {
	return s.clothes.ListByProduct(ctx, productID)
}

func (s *Service) UpdateClothes(ctx context.Context, id int64, in ClothesInput) (*domain.Clothes, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name required")
	}
	err := s.clothes.Update(ctx, id, domain.Clothes{
		ProductID: in.ProductID,
		Name:      strings.TrimSpace(in.Name),
		File:      in.File,
	})
	if err != nil {
		return nil, err
	}
	return s.clothes.GetByID(ctx, id)
}

func (s *Service) DeleteClothes(ctx context.Context, id int64) error {
	return s.clothes.Delete(ctx, id)
}

func (s *Service) CreateModel(ctx context.Context, in ModelInput) (*domain.ProductModel, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.File) == "" {
		return nil, domain.Invalid("name and file required")
	}
	return s.models.Create(ctx, domain.ProductModel{
		ProductID: in.ProductID,
		Name:      strings.TrimSpace(in.Name),
		File:      in.File,
	})
}

func (s *Service) GetModel(ctx context.Context, id int64) (*domain.ProductModel, error) {
	return s.models.GetByID(ctx, id)
}

func (s *Service) ListModelsByProduct(ctx context.Context, productID int64) ([]domain.ProductModel, error) {
	return s.models.ListByProduct(ctx, productID)
}

func (s *Service) UpdateModel(ctx context.Context, id int64, in ModelInput) (*domain.ProductModel, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.File) == "" {
		return nil, domain.Invalid("name and file required")
	}
	err := s.models.Update(ctx, id, domain.ProductModel{
		ProductID: in.ProductID,
		Name:      strings.TrimSpace(in.Name),
		File:      in.File,
	})
	if err != nil {
		return nil, err
	}
	return s.models.GetByID(ctx, id)
}

func (s *Service) DeleteModel(ctx context.Context, id int64) error {
	return s.models.Delete(ctx, id)
}
