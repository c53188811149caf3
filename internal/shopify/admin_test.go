package shopify

import (
	"context"
	"testing"
)

func TestFindCustomerIDByEmail(t *testing.T) {
	srv := gqlStub(t, map[string]string{
		"query getCustomerByEmail": `{"data":{"customers":{"edges":[
			{"node":{"id":"gid://shopify/Customer/5","email":"jane@example.com"}}
		]}}}`,
	})
	defer srv.Close()

	client := NewWithEndpoint(srv.URL, adminTokenHeader, "tok", testLogger())
	id, err := client.FindCustomerIDByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("FindCustomerIDByEmail: %v", err)
	}
	if id != "gid://shopify/Customer/5" {
		t.Fatalf("id = %q", id)
	}
}

func TestFindCustomerIDByEmail_NoMatch(t *testing.T) {
	srv := gqlStub(t, map[string]string{
		"query getCustomerByEmail": `{"data":{"customers":{"edges":[]}}}`,
	})
	defer srv.Close()

	client := NewWithEndpoint(srv.URL, adminTokenHeader, "tok", testLogger())
	id, err := client.FindCustomerIDByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("FindCustomerIDByEmail: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id for no match, got %q", id)
	}
}

func TestDraftOrderCreateAndComplete(t *testing.T) {
	srv := gqlStub(t, map[string]string{
		"mutation draftOrderCreate": `{"data":{"draftOrderCreate":{
			"draftOrder":{"id":"gid://shopify/DraftOrder/42","name":"#D42"},
			"userErrors":[]
		}}}`,
		"mutation draftOrderComplete": `{"data":{"draftOrderComplete":{
			"draftOrder":{"id":"gid://shopify/DraftOrder/42","order":{
				"id":"gid://shopify/Order/1001",
				"name":"#1001",
				"orderNumber":1001,
				"customer":{"id":"gid://shopify/Customer/5","email":"jane@example.com"}
			}},
			"userErrors":[]
		}}}`,
	})
	defer srv.Close()

	client := NewWithEndpoint(srv.URL, adminTokenHeader, "tok", testLogger())

	draftID, err := client.DraftOrderCreate(context.Background(), DraftOrderInput{
		Lines: []DraftOrderLine{{VariantID: "11", Quantity: 2}},
		Email: "jane@example.com",
		Note:  "Payment ID: pi_123\nProcessed via Stripe",
		Tags:  []string{"stripe-checkout", "web-order", "pi_123"},
	})
	if err != nil {
		t.Fatalf("DraftOrderCreate: %v", err)
	}
	if draftID != "gid://shopify/DraftOrder/42" {
		t.Fatalf("draft id = %q", draftID)
	}

	order, err := client.DraftOrderComplete(context.Background(), draftID)
	if err != nil {
		t.Fatalf("DraftOrderComplete: %v", err)
	}
	if order.OrderNumber != 1001 || !order.CustomerLinked {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestCartCreate(t *testing.T) {
	srv := gqlStub(t, map[string]string{
		"mutation cartCreate": `{"data":{"cartCreate":{
			"cart":{"id":"gid://shopify/Cart/9","checkoutUrl":"https://shop.example.com/checkout/9"},
			"userErrors":[]
		}}}`,
	})
	defer srv.Close()

	client := NewWithEndpoint(srv.URL, storefrontTokenHeader, "tok", testLogger())
	url, err := client.CartCreate(context.Background(), []CheckoutLine{{VariantID: "gid://shopify/ProductVariant/11", Quantity: 1}}, "jane@example.com", domainAddress())
	if err != nil {
		t.Fatalf("CartCreate: %v", err)
	}
	if url != "https://shop.example.com/checkout/9" {
		t.Fatalf("checkout url = %q", url)
	}
}
