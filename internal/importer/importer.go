package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dollshop-backend/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type ClothesWriter interface {
	Create(ctx context.Context, clothes domain.Clothes) (*domain.Clothes, error)
}

// CSVImporter reads catalog CSV exports and inserts products with their
// clothes variants. A row with a product name starts a new product;
// rows carrying only clothes columns attach to the product above them.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
	clothesRepo ClothesWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, clothes ClothesWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: products,
		clothesRepo: clothes,
	}
}

type clothesRow struct {
	Name string
	File string
}

type csvRow struct {
	Name     string
	Price    int64
	Desc     string
	Stock    int
	Gendered bool
	Image    string
	Clothes  []clothesRow
}

// Run parses CSV rows and creates products grouped by name rows.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows (clothes) belong to the current product.
		if current != nil && len(row.Clothes) > 0 {
			current.Clothes = append(current.Clothes, row.Clothes...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Name == "" || row.Price == 0 {
		return fmt.Errorf("invalid product row (missing required fields) for name %q", row.Name)
	}

	p, err := i.productRepo.Create(ctx, domain.Product{
		Name:        row.Name,
		Price:       row.Price,
		Description: row.Desc,
		Stock:       row.Stock,
		Gendered:    row.Gendered,
		Image:       row.Image,
	})
	if err != nil {
		return fmt.Errorf("create product %q: %w", row.Name, err)
	}

	for _, c := range row.Clothes {
		_, err := i.clothesRepo.Create(ctx, domain.Clothes{
			ProductID: p.ID,
			Name:      c.Name,
			File:      c.File,
		})
		if err != nil {
			return fmt.Errorf("create clothes %q for product %q: %w", c.Name, row.Name, err)
		}
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	name := pick(record, index, "name")
	desc := pick(record, index, "description")
	priceStr := pick(record, index, "price")
	stockStr := pick(record, index, "stock")
	genderedStr := pick(record, index, "gendered")
	image := pick(record, index, "image")
	clothesName := pick(record, index, "clothes.name")
	clothesFile := pick(record, index, "clothes.file")

	if name == "" && clothesName == "" {
		return nil
	}

	var price int64
	if priceStr != "" {
		price, _ = strconv.ParseInt(priceStr, 10, 64)
	}
	var stock int
	if stockStr != "" {
		stock, _ = strconv.Atoi(stockStr)
	}
	gendered, _ := strconv.ParseBool(genderedStr)

	row := &csvRow{
		Name:     name,
		Price:    price,
		Desc:     desc,
		Stock:    stock,
		Gendered: gendered,
		Image:    image,
	}
	if clothesName != "" {
		row.Clothes = []clothesRow{{Name: clothesName, File: clothesFile}}
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
