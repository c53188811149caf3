package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/pricing"
)

func TestGetCart_IncludesQuote(t *testing.T) {
	cart := &stubCartStore{items: []domain.CartLineItem{
		{ID: "l1", VariantID: "v1", Quantity: 2, UnitPriceCents: 2000},
	}}
	router := testRouter(t, Deps{Cart: cart})

	w := doJSON(t, router, http.MethodGet, "/api/cart", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Count int           `json:"count"`
		Quote pricing.Quote `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.Quote.SubtotalCents != 4000 || resp.Quote.ShippingCents != 599 || resp.Quote.TaxCents != 400 || resp.Quote.TotalCents != 4999 {
		t.Fatalf("unexpected quote %+v", resp.Quote)
	}
}

func TestGetCart_FreeShippingAboveThreshold(t *testing.T) {
	cart := &stubCartStore{items: []domain.CartLineItem{
		{ID: "l1", VariantID: "v1", Quantity: 3, UnitPriceCents: 2000},
	}}
	router := testRouter(t, Deps{Cart: cart})

	w := doJSON(t, router, http.MethodGet, "/api/cart", "", nil)
	var resp struct {
		Quote pricing.Quote `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Quote.ShippingCents != 0 || resp.Quote.TotalCents != 6600 {
		t.Fatalf("unexpected quote %+v", resp.Quote)
	}
}
