// Package importer loads catalog rows from CSV exports into the product
// repository (admin tooling).
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/money"
)

type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads spreadsheet exports and inserts/updates products.
// Expected headers: name, price, category, description, sizes, colors,
// images, keywords. Prices are major-unit decimals ("59.90"); sizes are
// "P:4;M:6" pairs; list columns are ";" separated.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, productRepo: repo}
}

// Run parses CSV rows and upserts one product per row. It returns how many
// products were imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if product == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", product.Name, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := pick(record, index, "name")
	if name == "" {
		return nil, nil
	}

	priceStr := pick(record, index, "price")
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for product %q", priceStr, name)
	}
	cents := money.FromDecimal(price)
	if cents <= 0 {
		return nil, fmt.Errorf("non-positive price for product %q", name)
	}

	stock, err := parseSizes(pick(record, index, "sizes"))
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", name, err)
	}

	return &domain.Product{
		ID:          pick(record, index, "id"),
		Name:        name,
		PriceCents:  cents,
		Category:    pick(record, index, "category"),
		Description: pick(record, index, "description"),
		StockBySize: stock,
		Colors:      splitList(pick(record, index, "colors")),
		Images:      splitList(pick(record, index, "images")),
		Keywords:    splitList(pick(record, index, "keywords")),
	}, nil
}

// parseSizes decodes "P:4;M:6" into a stock map.
func parseSizes(raw string) (map[string]int, error) {
	if raw == "" {
		return nil, nil
	}
	out := make(map[string]int)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		size, qtyStr, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid size pair %q", pair)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("invalid quantity in size pair %q", pair)
		}
		out[strings.TrimSpace(size)] = qty
	}
	return out, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ";") {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
