package featured

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"verse-storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const selectColumns = `id::text, shopify_product_id, display_order, is_active, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.FeaturedProduct, error) {
	const q = `
SELECT ` + selectColumns + `
FROM featured_products
ORDER BY display_order ASC
`
	return r.fetch(ctx, q)
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.FeaturedProduct, error) {
	const q = `
SELECT ` + selectColumns + `
FROM featured_products
WHERE is_active = TRUE
ORDER BY display_order ASC
`
	return r.fetch(ctx, q)
}

func (r *postgresRepo) Create(ctx context.Context, shopifyProductID string, displayOrder int) (*domain.FeaturedProduct, error) {
	const q = `
INSERT INTO featured_products (shopify_product_id, display_order)
VALUES ($1, $2)
RETURNING ` + selectColumns + `
`
	var p domain.FeaturedProduct
	err := r.pool.QueryRow(ctx, q, shopifyProductID, displayOrder).Scan(
		&p.ID,
		&p.ShopifyProductID,
		&p.DisplayOrder,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.FeaturedProduct, error) {
	const q = `
UPDATE featured_products
SET is_active = COALESCE($2, is_active),
    display_order = COALESCE($3, display_order),
    updated_at = now()
WHERE id = $1
RETURNING ` + selectColumns + `
`
	var p domain.FeaturedProduct
	err := r.pool.QueryRow(ctx, q, id, in.IsActive, in.DisplayOrder).Scan(
		&p.ID,
		&p.ShopifyProductID,
		&p.DisplayOrder,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert keys on the external product id; the importer and seeder use it.
func (r *postgresRepo) Upsert(ctx context.Context, shopifyProductID string, displayOrder int, isActive bool) error {
	const q = `
INSERT INTO featured_products (shopify_product_id, display_order, is_active)
VALUES ($1, $2, $3)
ON CONFLICT (shopify_product_id) DO UPDATE
SET display_order = EXCLUDED.display_order,
    is_active = EXCLUDED.is_active,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, shopifyProductID, displayOrder, isActive)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM featured_products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetch(ctx context.Context, query string) ([]domain.FeaturedProduct, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FeaturedProduct
	for rows.Next() {
		var p domain.FeaturedProduct
		if err := rows.Scan(
			&p.ID,
			&p.ShopifyProductID,
			&p.DisplayOrder,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
