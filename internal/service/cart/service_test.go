package cart

import (
	"context"
	"errors"
	"testing"

	"dollshop-backend/internal/domain"
	cartrepo "dollshop-backend/internal/repository/cart"
)

type stubRepo struct {
	cart           *domain.Cart
	getErr         error
	lines          []domain.CartLine
	addErr         error
	lastAddCartID  int64
	lastAddProduct int64
	lastAddCount   int
	lastSelections []domain.OptionSelection
	lastReplace    cartrepo.ReplaceOptionsInput
	lastLineID     int64
	lastLineCount  int
	removed        bool
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubRepo) GetByUser(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubRepo) AddProduct(_ context.Context, cartID, productID int64, count int) error {
	s.lastAddCartID = cartID
	s.lastAddProduct = productID
	s.lastAddCount = count
	return s.addErr
}

func (s *stubRepo) AddProductWithOptions(_ context.Context, cartID, productID int64, count int, selections []domain.OptionSelection) error {
	s.lastAddCartID = cartID
	s.lastAddProduct = productID
	s.lastAddCount = count
	s.lastSelections = selections
	return s.addErr
}

func (s *stubRepo) UpdateLine(_ context.Context, lineID, productID int64, count int) error {
	s.lastLineID = lineID
	s.lastAddProduct = productID
	s.lastLineCount = count
	return nil
}

func (s *stubRepo) ReplaceLineOptions(_ context.Context, in cartrepo.ReplaceOptionsInput) error {
	s.lastReplace = in
	return nil
}

func (s *stubRepo) RemoveProduct(_ context.Context, cartID, productID int64) error {
	s.lastAddCartID = cartID
	s.lastAddProduct = productID
	s.removed = true
	return nil
}

func (s *stubRepo) ListLines(_ context.Context, _ int64) ([]domain.CartLine, error) {
	return s.lines, nil
}

func newStubService(repo *stubRepo) *Service {
	return &Service{repo: repo}
}

func TestAddProduct_RejectsNonPositiveCount(t *testing.T) {
	svc := newStubService(&stubRepo{})
	err := svc.AddProduct(context.Background(), AddInput{CartID: 1, ProductID: 2, Count: 0})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestAddProduct_ForwardsToRepo(t *testing.T) {
	repo := &stubRepo{}
	svc := newStubService(repo)
	if err := svc.AddProduct(context.Background(), AddInput{CartID: 1, ProductID: 2, Count: 3}); err != nil {
		t.Fatalf("add product: %v", err)
	}
	if repo.lastAddCartID != 1 || repo.lastAddProduct != 2 || repo.lastAddCount != 3 {
		t.Fatalf("unexpected repo call: cart=%d product=%d count=%d", repo.lastAddCartID, repo.lastAddProduct, repo.lastAddCount)
	}
}

func TestAddProductWithOption_ZipsSelections(t *testing.T) {
	repo := &stubRepo{}
	svc := newStubService(repo)
	err := svc.AddProductWithOption(context.Background(), AddWithOptionInput{
		CartID:     1,
		ProductID:  2,
		Count:      1,
		ClothesIDs: []int64{10, 11},
		Colors:     []string{"red", "blue"},
	})
	if err != nil {
		t.Fatalf("add with option: %v", err)
	}
	want := []domain.OptionSelection{{ClothesID: 10, Color: "red"}, {ClothesID: 11, Color: "blue"}}
	if len(repo.lastSelections) != len(want) {
		t.Fatalf("expected %d selections, got %d", len(want), len(repo.lastSelections))
	}
	for i, sel := range repo.lastSelections {
		if sel != want[i] {
			t.Fatalf("selection %d = %+v, want %+v", i, sel, want[i])
		}
	}
}

func TestAddProductWithOption_RejectsMismatchedArrays(t *testing.T) {
	svc := newStubService(&stubRepo{})
	err := svc.AddProductWithOption(context.Background(), AddWithOptionInput{
		CartID:     1,
		ProductID:  2,
		Count:      1,
		ClothesIDs: []int64{10, 11},
		Colors:     []string{"red"},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for mismatched arrays, got %v", err)
	}
}

func TestAddProductWithOption_RequiresSelection(t *testing.T) {
	svc := newStubService(&stubRepo{})
	err := svc.AddProductWithOption(context.Background(), AddWithOptionInput{
		CartID:    1,
		ProductID: 2,
		Count:     1,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty selection, got %v", err)
	}
}

func TestUpdateProductWithOption_BuildsReplaceInput(t *testing.T) {
	repo := &stubRepo{}
	svc := newStubService(repo)
	err := svc.UpdateProductWithOption(context.Background(), 7, UpdateWithOptionInput{
		ProductID:  2,
		Count:      4,
		ClothesIDs: []int64{10},
		Colors:     []string{"red"},
		Counts:     []int{2},
	})
	if err != nil {
		t.Fatalf("update with option: %v", err)
	}
	in := repo.lastReplace
	if in.LineID != 7 || in.ProductID != 2 || in.Count != 4 {
		t.Fatalf("unexpected replace input: %+v", in)
	}
	if len(in.Options) != 1 || in.Options[0] != (cartrepo.OptionItem{ClothesID: 10, Color: "red", Count: 2}) {
		t.Fatalf("unexpected replace options: %+v", in.Options)
	}
}

func TestUpdateProductWithOption_AllowsEmptyOptionSet(t *testing.T) {
	repo := &stubRepo{}
	svc := newStubService(repo)
	err := svc.UpdateProductWithOption(context.Background(), 7, UpdateWithOptionInput{
		ProductID: 2,
		Count:     1,
	})
	if err != nil {
		t.Fatalf("update with empty option set: %v", err)
	}
	if len(repo.lastReplace.Options) != 0 {
		t.Fatalf("expected empty option set, got %+v", repo.lastReplace.Options)
	}
}

func TestUpdateProductWithOption_RejectsNonPositiveOptionCount(t *testing.T) {
	svc := newStubService(&stubRepo{})
	err := svc.UpdateProductWithOption(context.Background(), 7, UpdateWithOptionInput{
		ProductID:  2,
		Count:      1,
		ClothesIDs: []int64{10},
		Colors:     []string{"red"},
		Counts:     []int{0},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestFindAllProducts_ChecksCartExists(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrCartNotFound}
	svc := newStubService(repo)
	_, err := svc.FindAllProducts(context.Background(), 99)
	if !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestDeleteAddedProduct_ForwardsToRepo(t *testing.T) {
	repo := &stubRepo{}
	svc := newStubService(repo)
	if err := svc.DeleteAddedProduct(context.Background(), RemoveInput{CartID: 1, ProductID: 2}); err != nil {
		t.Fatalf("delete added product: %v", err)
	}
	if !repo.removed {
		t.Fatalf("expected repo RemoveProduct call")
	}
}
