package domain

import "strings"

// OptionPair is one selected variant option, e.g. Color/Bronze. Order is
// preserved as the backend returned it.
type OptionPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OptionsKey builds a deterministic string over ordered option pairs, used
// together with the variant id as the cart-line merge key.
func OptionsKey(opts []OptionPair) string {
	var b strings.Builder
	for _, o := range opts {
		b.WriteString(o.Name)
		b.WriteByte('=')
		b.WriteString(o.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// CartLineItem is one entry in the cart. The id is generated on insert;
// merge identity is (VariantID, Options), not the id.
type CartLineItem struct {
	ID                string       `json:"id"`
	ProductID         string       `json:"productId"`
	VariantID         string       `json:"variantId"`
	Title             string       `json:"title"`
	Image             string       `json:"image,omitempty"`
	Options           []OptionPair `json:"options,omitempty"`
	Quantity          int          `json:"quantity"`
	UnitPriceCents    int64        `json:"unitPriceCents"`
	CompareAtCents    int64        `json:"compareAtCents,omitempty"`
	Currency          string       `json:"currency"`
	Vendor            string       `json:"vendor,omitempty"`
	SKU               string       `json:"sku,omitempty"`
	AvailableForSale  bool         `json:"availableForSale"`
	QuantityAvailable *int         `json:"quantityAvailable,omitempty"`
}
