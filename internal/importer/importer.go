package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/shopify"
)

// FeaturedWriter upserts curation rows; the postgres repository satisfies it.
type FeaturedWriter interface {
	Upsert(ctx context.Context, shopifyProductID string, displayOrder int, isActive bool) error
}

// CSVImporter reads featured-product curation exports and inserts/updates
// rows. Expected columns: shopify_product_id, display_order, active.
type CSVImporter struct {
	reader *csv.Reader
	repo   FeaturedWriter
}

func NewCSVImporter(r io.Reader, repo FeaturedWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		repo:   repo,
	}
}

type csvRow struct {
	ProductID    string
	DisplayOrder int
	IsActive     bool
}

// Run parses CSV rows and upserts each curation entry in order.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["shopify_product_id"]; !ok {
		return 0, fmt.Errorf("missing required column %q", "shopify_product_id")
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		row, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if row == nil {
			continue
		}

		if err := i.repo.Upsert(ctx, row.ProductID, row.DisplayOrder, row.IsActive); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", row.ProductID, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	rawID := pick(record, index, "shopify_product_id")
	if rawID == "" {
		return nil, nil // blank rows are skipped
	}

	// Accept bare numeric ids or full gid:// strings.
	id := shopify.NumericID(rawID)
	if id == "" {
		return nil, &domain.ValidationError{Field: "shopify_product_id", Message: "not a product id: " + rawID}
	}

	displayOrder := 0
	if raw := pick(record, index, "display_order"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid display_order %q", raw)
		}
		displayOrder = n
	}

	isActive := true
	if raw := pick(record, index, "active"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid active flag %q", raw)
		}
		isActive = b
	}

	return &csvRow{
		ProductID:    id,
		DisplayOrder: displayOrder,
		IsActive:     isActive,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
