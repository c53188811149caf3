package domain

import "time"

// Session is the opaque bearer credential issued by the commerce backend.
// It is usable only while now < ExpiresAt.
type Session struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Customer is the read-only profile projection fetched with a valid session.
// It is never mutated locally; RefreshCustomer refetches it wholesale.
type Customer struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName,omitempty"`
	LastName         string    `json:"lastName,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	AcceptsMarketing bool      `json:"acceptsMarketing"`
	CreatedAt        time.Time `json:"createdAt"`
	Orders           []Order   `json:"orders"`
}

// Money pairs an amount in cents with its currency code.
type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// Order is externally owned; fields mirror what the backend exposes.
type Order struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	OrderNumber       int             `json:"orderNumber"`
	ProcessedAt       time.Time       `json:"processedAt"`
	FinancialStatus   string          `json:"financialStatus,omitempty"`
	FulfillmentStatus string          `json:"fulfillmentStatus,omitempty"`
	Subtotal          Money           `json:"subtotal"`
	ShippingTotal     Money           `json:"shippingTotal"`
	TaxTotal          Money           `json:"taxTotal"`
	Total             Money           `json:"total"`
	LineItems         []OrderLineItem `json:"lineItems"`
	ShippingAddress   *MailingAddress `json:"shippingAddress,omitempty"`
	StatusURL         string          `json:"statusUrl,omitempty"`
}

// OrderLineItem references a variant snapshot taken at order time.
type OrderLineItem struct {
	Title          string `json:"title"`
	Quantity       int    `json:"quantity"`
	VariantID      string `json:"variantId,omitempty"`
	VariantTitle   string `json:"variantTitle,omitempty"`
	Image          string `json:"image,omitempty"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Currency       string `json:"currency,omitempty"`
}

// MailingAddress holds shipping/billing address fields.
type MailingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone,omitempty"`
}
