// Package featured manages the admin-curated featured-product list.
// Referenced product ids are stored without checking they exist in the
// catalog; curation is trusted.
package featured

import (
	"context"
	"strings"

	"verse-storefront/internal/domain"
	featuredrepo "verse-storefront/internal/repository/featured"
	"verse-storefront/internal/shopify"
)

type Service struct {
	repo featuredrepo.Repository
}

func New(repo featuredrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all records ordered by display order.
func (s *Service) List(ctx context.Context) ([]domain.FeaturedProduct, error) {
	return s.repo.List(ctx)
}

// Create inserts a record for the given external product id. A duplicate id
// maps to domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, shopifyProductID string, displayOrder int) (*domain.FeaturedProduct, error) {
	id := strings.TrimSpace(shopifyProductID)
	if id == "" {
		return nil, &domain.ValidationError{Field: "shopifyProductId", Message: "product ID is required"}
	}
	// Accept either bare numeric ids or full gid:// strings.
	if numeric := shopify.NumericID(id); numeric != "" {
		id = numeric
	}
	return s.repo.Create(ctx, id, displayOrder)
}

// Update patches only the provided fields.
func (s *Service) Update(ctx context.Context, id string, isActive *bool, displayOrder *int) (*domain.FeaturedProduct, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &domain.ValidationError{Field: "id", Message: "product ID is required"}
	}
	return s.repo.Update(ctx, id, featuredrepo.UpdateInput{
		IsActive:     isActive,
		DisplayOrder: displayOrder,
	})
}

// Delete removes a record by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &domain.ValidationError{Field: "id", Message: "product ID is required"}
	}
	return s.repo.Delete(ctx, id)
}

// ActiveGlobalIDs is the public read path: active records in display order,
// projected to the backend's global-id form.
func (s *Service) ActiveGlobalIDs(ctx context.Context) ([]string, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, shopify.ProductGID(r.ShopifyProductID))
	}
	return ids, nil
}
