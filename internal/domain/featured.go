package domain

import "time"

// FeaturedProduct is an admin-curated reference to a catalog product.
// ShopifyProductID is the numeric external id and must be unique.
type FeaturedProduct struct {
	ID               string    `json:"id"`
	ShopifyProductID string    `json:"shopifyProductId"`
	DisplayOrder     int       `json:"displayOrder"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
