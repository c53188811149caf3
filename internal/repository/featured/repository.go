package featured

import (
	"context"

	"verse-storefront/internal/domain"
)

// UpdateInput patches only the fields that are non-nil.
type UpdateInput struct {
	IsActive     *bool
	DisplayOrder *int
}

// Repository persists featured-product records.
type Repository interface {
	List(ctx context.Context) ([]domain.FeaturedProduct, error)
	ListActive(ctx context.Context) ([]domain.FeaturedProduct, error)
	Create(ctx context.Context, shopifyProductID string, displayOrder int) (*domain.FeaturedProduct, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.FeaturedProduct, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, shopifyProductID string, displayOrder int, isActive bool) error
}
