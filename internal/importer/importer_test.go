package importer

import (
	"context"
	"strings"
	"testing"

	"dollshop-backend/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = int64(len(s.items) + 1)
	s.items = append(s.items, p)
	return &p, nil
}

type stubClothesRepo struct {
	items []domain.Clothes
}

func (s *stubClothesRepo) Create(_ context.Context, c domain.Clothes) (*domain.Clothes, error) {
	c.ID = int64(len(s.items) + 1)
	s.items = append(s.items, c)
	return &c, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `name,price,description,stock,gendered,image,clothes.name,clothes.file
Dollsy Boy,49000,Talking doll,50,false,boy.png,overalls,overalls.png
,,,,,,raincoat,raincoat.png
Dollsy Girl,49000,Talking doll,50,true,girl.png,,`

	products := &stubProductRepo{}
	clothes := &stubClothesRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), products, clothes)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	if len(products.items) != 2 {
		t.Fatalf("expected 2 products saved, got %d", len(products.items))
	}
	if products.items[0].Name != "Dollsy Boy" || products.items[0].Price != 49000 || products.items[0].Stock != 50 {
		t.Fatalf("unexpected product data: %+v", products.items[0])
	}
	if !products.items[1].Gendered {
		t.Fatalf("expected second product to be gendered")
	}

	if len(clothes.items) != 2 {
		t.Fatalf("expected 2 clothes saved, got %d", len(clothes.items))
	}
	for _, c := range clothes.items {
		if c.ProductID != 1 {
			t.Fatalf("expected clothes bound to first product, got %+v", c)
		}
	}
	if clothes.items[1].Name != "raincoat" || clothes.items[1].File != "raincoat.png" {
		t.Fatalf("unexpected continuation clothes row: %+v", clothes.items[1])
	}
}

func TestCSVImporter_RunRejectsMissingPrice(t *testing.T) {
	csvData := `name,price,description
Broken Doll,,no price`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{}, &stubClothesRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for product without price")
	}
}
