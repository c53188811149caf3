// Package pricing holds the flat shipping and tax rules. The web client
// computed these in two places; here a single quote function serves both the
// cart summary and the checkout orchestrator.
package pricing

// Amounts are int64 cents throughout.
const (
	// FreeShippingThresholdCents: orders strictly above this ship free.
	FreeShippingThresholdCents int64 = 5000
	// FlatShippingCents applies below the threshold.
	FlatShippingCents int64 = 599
	// TaxRatePercent is a flat rate on the subtotal, no jurisdiction logic.
	TaxRatePercent int64 = 10
)

// Quote is the price breakdown for a cart subtotal.
type Quote struct {
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

// QuoteFor computes shipping and tax for a subtotal.
func QuoteFor(subtotalCents int64) Quote {
	shipping := FlatShippingCents
	if subtotalCents > FreeShippingThresholdCents {
		shipping = 0
	}
	tax := subtotalCents * TaxRatePercent / 100
	return Quote{
		SubtotalCents: subtotalCents,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotalCents + shipping + tax,
	}
}
