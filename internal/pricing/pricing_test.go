package pricing

import "testing"

func TestQuoteFor_BelowFreeShippingThreshold(t *testing.T) {
	q := QuoteFor(4000)

	if q.SubtotalCents != 4000 {
		t.Fatalf("subtotal = %d, want 4000", q.SubtotalCents)
	}
	if q.ShippingCents != 599 {
		t.Fatalf("shipping = %d, want 599", q.ShippingCents)
	}
	if q.TaxCents != 400 {
		t.Fatalf("tax = %d, want 400", q.TaxCents)
	}
	if q.TotalCents != 4999 {
		t.Fatalf("total = %d, want 4999", q.TotalCents)
	}
}

func TestQuoteFor_AboveFreeShippingThreshold(t *testing.T) {
	q := QuoteFor(6000)

	if q.ShippingCents != 0 {
		t.Fatalf("shipping = %d, want 0", q.ShippingCents)
	}
	if q.TaxCents != 600 {
		t.Fatalf("tax = %d, want 600", q.TaxCents)
	}
	if q.TotalCents != 6600 {
		t.Fatalf("total = %d, want 6600", q.TotalCents)
	}
}

func TestQuoteFor_ExactlyAtThresholdPaysShipping(t *testing.T) {
	// Free shipping requires strictly more than the threshold.
	q := QuoteFor(FreeShippingThresholdCents)
	if q.ShippingCents != FlatShippingCents {
		t.Fatalf("shipping = %d, want %d", q.ShippingCents, FlatShippingCents)
	}
}

func TestQuoteFor_EmptyCart(t *testing.T) {
	q := QuoteFor(0)
	if q.TotalCents != FlatShippingCents {
		t.Fatalf("total = %d, want %d", q.TotalCents, FlatShippingCents)
	}
}
