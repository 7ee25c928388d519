package order

import (
	"context"
	"errors"
	"testing"

	"dollshop-backend/internal/domain"
	orderrepo "dollshop-backend/internal/repository/order"
)

type stubRepo struct {
	created    *orderrepo.CreateInput
	createErr  error
	order      *domain.PurchaseOrder
	lastUpdate orderrepo.UpdateInput
	deletedID  int64
}

func (s *stubRepo) Create(_ context.Context, in orderrepo.CreateInput) (*domain.PurchaseOrder, error) {
	s.created = &in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.PurchaseOrder{ID: 1, UserID: in.UserID, PostalCode: in.PostalCode, Address: in.Address}, nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]domain.PurchaseOrder, error) {
	return nil, nil
}

func (s *stubRepo) ListByUser(_ context.Context, _ int64) ([]domain.PurchaseOrder, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.PurchaseOrder, error) {
	if s.order == nil {
		return nil, domain.ErrNotFound
	}
	return s.order, nil
}

func (s *stubRepo) Update(_ context.Context, _ int64, in orderrepo.UpdateInput) error {
	s.lastUpdate = in
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.deletedID = id
	return nil
}

func TestCreate_MapsItemsAndOptions(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	_, err := svc.Create(context.Background(), 5, CreateInput{
		PostalCode: "04524",
		Address:    "1 Doll Street",
		Items: []ItemInput{
			{ProductID: 2, Count: 1, OptionClothesIDs: []int64{10}, OptionColors: []string{"red"}, OptionCounts: []int{2}},
			{ProductID: 3, Count: 4},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := repo.created
	if in == nil {
		t.Fatalf("expected repo create call")
	}
	if in.UserID != 5 || in.Address != "1 Doll Street" {
		t.Fatalf("unexpected header: %+v", in)
	}
	if len(in.Items) != 2 || in.Items[0] != (domain.OrderItem{ProductID: 2, Count: 1}) {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
	if len(in.Options) != 1 || in.Options[0].ProductID != 2 {
		t.Fatalf("expected options only for optioned product, got %+v", in.Options)
	}
}

func TestCreate_RejectsEmptyItems(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.Create(context.Background(), 5, CreateInput{PostalCode: "04524", Address: "addr"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty items, got %v", err)
	}
}

func TestCreate_RejectsMismatchedOptionArrays(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.Create(context.Background(), 5, CreateInput{
		PostalCode: "04524",
		Address:    "addr",
		Items: []ItemInput{
			{ProductID: 2, Count: 1, OptionClothesIDs: []int64{10, 11}, OptionColors: []string{"red"}, OptionCounts: []int{1, 1}},
		},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for mismatched arrays, got %v", err)
	}
}

func TestCreate_RejectsNonPositiveCount(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.Create(context.Background(), 5, CreateInput{
		PostalCode: "04524",
		Address:    "addr",
		Items:      []ItemInput{{ProductID: 2, Count: 0}},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCreate_PropagatesCartErrors(t *testing.T) {
	repo := &stubRepo{createErr: domain.ErrCartLineNotFound}
	svc := &Service{repo: repo}
	_, err := svc.Create(context.Background(), 5, CreateInput{
		PostalCode: "04524",
		Address:    "addr",
		Items:      []ItemInput{{ProductID: 2, Count: 1}},
	})
	if !errors.Is(err, domain.ErrCartLineNotFound) {
		t.Fatalf("expected ErrCartLineNotFound, got %v", err)
	}
}

func TestUpdate_ForwardsFields(t *testing.T) {
	repo := &stubRepo{order: &domain.PurchaseOrder{ID: 9}}
	svc := &Service{repo: repo}
	_, err := svc.Update(context.Background(), 9, 5, UpdateInput{PostalCode: "11111", Address: "2 Doll Street", State: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.lastUpdate.Address != "2 Doll Street" || !repo.lastUpdate.State {
		t.Fatalf("unexpected update input: %+v", repo.lastUpdate)
	}
}
