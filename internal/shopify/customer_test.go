package shopify

import (
	"context"
	"errors"
	"testing"

	"verse-storefront/internal/domain"
)

func domainAddress() domain.MailingAddress {
	return domain.MailingAddress{
		FirstName: "Jane",
		LastName:  "Doe",
		Address1:  "1 Verse St",
		City:      "Portland",
		Province:  "OR",
		Country:   "US",
		Zip:       "97201",
	}
}

func TestGetCustomer(t *testing.T) {
	srv := gqlStub(t, map[string]string{
		"query getCustomer(": `{"data":{"customer":{
			"id":"gid://shopify/Customer/5",
			"firstName":"Jane",
			"lastName":"Doe",
			"email":"jane@example.com",
			"acceptsMarketing":false,
			"createdAt":"2025-01-01T00:00:00Z",
			"orders":{"edges":[{"node":{
				"id":"gid://shopify/Order/1001",
				"name":"#1001",
				"orderNumber":1001,
				"processedAt":"2025-06-01T12:00:00Z",
				"financialStatus":"PAID",
				"fulfillmentStatus":"FULFILLED",
				"totalPriceV2":{"amount":"49.99","currencyCode":"USD"},
				"subtotalPriceV2":{"amount":"40.00","currencyCode":"USD"},
				"totalShippingPriceV2":{"amount":"5.99","currencyCode":"USD"},
				"totalTaxV2":{"amount":"4.00","currencyCode":"USD"},
				"lineItems":{"edges":[{"node":{
					"title":"Verse Tee",
					"quantity":2,
					"variant":{
						"id":"gid://shopify/ProductVariant/11",
						"title":"S",
						"image":{"url":"https://cdn/img1.jpg"},
						"priceV2":{"amount":"20.00","currencyCode":"USD"}
					}
				}}]},
				"shippingAddress":{"firstName":"Jane","lastName":"Doe","address1":"1 Verse St","city":"Portland","province":"OR","country":"US","zip":"97201"},
				"statusUrl":"https://shop.example.com/orders/1001"
			}}]}
		}}}`,
	})
	defer srv.Close()

	client := NewWithEndpoint(srv.URL, storefrontTokenHeader, "tok", testLogger())
	customer, err := client.GetCustomer(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("GetCustomer: %v", err)
	}
	if customer.Email != "jane@example.com" {
		t.Fatalf("unexpected customer %+v", customer)
	}
	if len(customer.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(customer.Orders))
	}

	o := customer.Orders[0]
	if o.Total.Cents != 4999 || o.Subtotal.Cents != 4000 {
		t.Fatalf("unexpected order totals %+v", o)
	}
	if o.ShippingTotal.Cents != 599 || o.TaxTotal.Cents != 400 {
		t.Fatalf("unexpected shipping/tax %+v", o)
	}
	if len(o.LineItems) != 1 || o.LineItems[0].UnitPriceCents != 2000 {
		t.Fatalf("unexpected line items %+v", o.LineItems)
	}
	if o.ShippingAddress == nil || o.ShippingAddress.City != "Portland" {
		t.Fatalf("unexpected shipping address %+v", o.ShippingAddress)
	}
}

func TestGetCustomer_NullMeansSessionExpired(t *testing.T) {
	srv := gqlStub(t, map[string]string{
		"query getCustomer(": `{"data":{"customer":null}}`,
	})
	defer srv.Close()

	client := NewWithEndpoint(srv.URL, storefrontTokenHeader, "tok", testLogger())
	_, err := client.GetCustomer(context.Background(), "stale")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}
