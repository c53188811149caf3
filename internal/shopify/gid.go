package shopify

import "strings"

// Global id prefixes used by the backend.
const (
	productGIDPrefix = "gid://shopify/Product/"
	variantGIDPrefix = "gid://shopify/ProductVariant/"
)

// ProductGID formats a numeric product id into the backend's global id form.
func ProductGID(id string) string {
	return productGIDPrefix + NumericID(id)
}

// VariantGID formats a numeric variant id into the backend's global id form.
func VariantGID(id string) string {
	return variantGIDPrefix + NumericID(id)
}

// NumericID strips everything but digits, accepting either a bare numeric id
// or a full gid:// string.
func NumericID(id string) string {
	var b strings.Builder
	for _, r := range id {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
