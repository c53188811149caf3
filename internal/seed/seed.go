package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type featuredSeed struct {
	ShopifyProductID string
	DisplayOrder     int
	IsActive         bool
}

// Apply inserts a small featured-product curation for manual testing. It is
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	records := []featuredSeed{
		{ShopifyProductID: "8000000000001", DisplayOrder: 1, IsActive: true},
		{ShopifyProductID: "8000000000002", DisplayOrder: 2, IsActive: true},
		{ShopifyProductID: "8000000000003", DisplayOrder: 3, IsActive: false},
	}

	for _, r := range records {
		if err := upsertFeatured(ctx, pool, r); err != nil {
			return fmt.Errorf("upsert featured product %s: %w", r.ShopifyProductID, err)
		}
	}

	return nil
}

func upsertFeatured(ctx context.Context, pool *pgxpool.Pool, r featuredSeed) error {
	const q = `
INSERT INTO featured_products (shopify_product_id, display_order, is_active)
VALUES ($1, $2, $3)
ON CONFLICT (shopify_product_id) DO UPDATE
SET display_order = EXCLUDED.display_order,
    is_active = EXCLUDED.is_active,
    updated_at = now()
`
	_, err := pool.Exec(ctx, q, r.ShopifyProductID, r.DisplayOrder, r.IsActive)
	return err
}
