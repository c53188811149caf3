package domain

import "time"

// Product mirrors the storefront catalog projection: one product with its
// nested variants, options and images, fetched in a single query.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Vendor      string          `json:"vendor,omitempty"`
	ProductType string          `json:"productType,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Options     []ProductOption `json:"options,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Variants    []Variant       `json:"variants"`
}

// ProductOption names one axis of variation and its values, e.g. Size: S/M/L.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Variant is a purchasable configuration of a product with its own price and
// inventory count.
type Variant struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	PriceCents        int64        `json:"priceCents"`
	CompareAtCents    int64        `json:"compareAtCents,omitempty"`
	Currency          string       `json:"currency"`
	AvailableForSale  bool         `json:"availableForSale"`
	QuantityAvailable *int         `json:"quantityAvailable,omitempty"`
	SelectedOptions   []OptionPair `json:"selectedOptions,omitempty"`
	Image             string       `json:"image,omitempty"`
}
