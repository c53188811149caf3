// Package checkout drives the two-step checkout flow: validate shipping
// input, size a payment intent to the cart, then hand off to the gateway's
// hosted payment element. After a confirmed payment the permanent order is
// created on the commerce backend in the background.
package checkout

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/pricing"
	"verse-storefront/internal/shopify"
	"verse-storefront/internal/stripe"
)

// Step is the orchestrator's state. Success is a navigation, not a state.
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
)

// Gateway is the payment-gateway slice the orchestrator needs.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency, receiptEmail string, metadata map[string]string) (*stripe.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)
}

// AdminBackend covers the order-creation sequence on the commerce backend.
type AdminBackend interface {
	FindCustomerIDByEmail(ctx context.Context, email string) (string, error)
	DraftOrderCreate(ctx context.Context, in shopify.DraftOrderInput) (string, error)
	DraftOrderComplete(ctx context.Context, draftOrderID string) (*shopify.CompletedOrder, error)
}

// HostedBackend opens a backend-hosted checkout as an alternative flow.
type HostedBackend interface {
	CartCreate(ctx context.Context, lines []shopify.CheckoutLine, email string, addr domain.MailingAddress) (string, error)
}

// Cart is the slice of the cart store the orchestrator reads and clears.
type Cart interface {
	Items() []domain.CartLineItem
	TotalCents() int64
	Count() int
	Clear()
}

// ShippingForm is the validated input of the shipping step.
type ShippingForm struct {
	Email   string                `json:"email"`
	Address domain.MailingAddress `json:"address"`
}

// Orchestrator holds the in-flight checkout. One checkout is active at a
// time, matching the single-cart model.
type Orchestrator struct {
	mu           sync.Mutex
	step         Step
	clientSecret string
	intentID     string
	email        string
	address      domain.MailingAddress

	gateway  Gateway
	admin    AdminBackend
	hosted   HostedBackend
	cart     Cart
	currency string
	logger   *log.Logger

	// OnOrderResult, when set, observes the background order creation.
	// Production leaves it nil; failures are logged only.
	OnOrderResult func(*shopify.CompletedOrder, error)
}

func New(gateway Gateway, admin AdminBackend, hosted HostedBackend, cart Cart, currency string, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		step:     StepShipping,
		gateway:  gateway,
		admin:    admin,
		hosted:   hosted,
		cart:     cart,
		currency: currency,
		logger:   logger,
	}
}

// Step returns the current state.
func (o *Orchestrator) Step() Step {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.step
}

// requiredFields in validation order; address2 and phone are optional.
var requiredFields = []struct {
	name string
	get  func(domain.MailingAddress) string
}{
	{"first name", func(a domain.MailingAddress) string { return a.FirstName }},
	{"last name", func(a domain.MailingAddress) string { return a.LastName }},
	{"address1", func(a domain.MailingAddress) string { return a.Address1 }},
	{"city", func(a domain.MailingAddress) string { return a.City }},
	{"province", func(a domain.MailingAddress) string { return a.Province }},
	{"country", func(a domain.MailingAddress) string { return a.Country }},
	{"zip", func(a domain.MailingAddress) string { return a.Zip }},
}

func validateShipping(form ShippingForm) error {
	if !strings.Contains(form.Email, "@") {
		return &domain.ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(form.Address)) == "" {
			return &domain.ValidationError{Field: f.name, Message: "please fill in " + f.name}
		}
	}
	return nil
}

// ProceedToPayment validates the shipping form, prices the cart and requests
// a payment intent sized to the total. On success the orchestrator moves to
// the payment step; any failure leaves it in shipping.
func (o *Orchestrator) ProceedToPayment(ctx context.Context, form ShippingForm) (string, pricing.Quote, error) {
	if err := validateShipping(form); err != nil {
		return "", pricing.Quote{}, err
	}

	quote := pricing.QuoteFor(o.cart.TotalCents())
	metadata := map[string]string{
		"customerName": strings.TrimSpace(form.Address.FirstName + " " + form.Address.LastName),
		"itemCount":    strconv.Itoa(o.cart.Count()),
	}
	intent, err := o.gateway.CreatePaymentIntent(ctx, quote.TotalCents, o.currency, form.Email, metadata)
	if err != nil {
		return "", pricing.Quote{}, err
	}

	o.mu.Lock()
	o.step = StepPayment
	o.clientSecret = intent.ClientSecret
	o.intentID = intent.ID
	o.email = form.Email
	o.address = form.Address
	o.mu.Unlock()

	return intent.ClientSecret, quote, nil
}

// CompletePayment is called once the gateway confirms the payment. Order
// creation on the commerce backend runs in the background: a failure there
// is logged, never surfaced, and does not roll back the payment. The cart
// clears immediately and the flow resets for the next checkout.
func (o *Orchestrator) CompletePayment(paymentIntentID string) {
	items := o.cart.Items()

	o.mu.Lock()
	email := o.email
	address := o.address
	o.step = StepShipping
	o.clientSecret = ""
	o.intentID = ""
	o.mu.Unlock()

	req := OrderRequest{
		Items:           items,
		Email:           email,
		ShippingAddress: address,
		PaymentID:       paymentIntentID,
	}
	go func() {
		order, err := o.CreateOrder(context.Background(), req)
		if err != nil {
			o.logger.Printf("background order creation for payment %s: %v", paymentIntentID, err)
		} else {
			o.logger.Printf("order %s created for payment %s", order.Name, paymentIntentID)
		}
		if o.OnOrderResult != nil {
			o.OnOrderResult(order, err)
		}
	}()

	o.cart.Clear()
}

// OrderRequest carries everything the backend order needs.
type OrderRequest struct {
	Items           []domain.CartLineItem
	Email           string
	ShippingAddress domain.MailingAddress
	PaymentID       string
}

// CreateOrder runs the fixed three-step sequence: look up the customer by
// email (absence tolerated, the order proceeds linked by email only), create
// a draft order, complete it. A failure at either draft step aborts the
// sequence; an orphaned draft after a failed completion is an accepted
// failure mode.
func (o *Orchestrator) CreateOrder(ctx context.Context, req OrderRequest) (*shopify.CompletedOrder, error) {
	customerID, err := o.admin.FindCustomerIDByEmail(ctx, req.Email)
	if err != nil {
		o.logger.Printf("customer lookup for %s: %v", req.Email, err)
		customerID = ""
	}

	lines := make([]shopify.DraftOrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, shopify.DraftOrderLine{
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
		})
	}

	draftID, err := o.admin.DraftOrderCreate(ctx, shopify.DraftOrderInput{
		Lines:           lines,
		Email:           req.Email,
		CustomerID:      customerID,
		ShippingAddress: req.ShippingAddress,
		Note:            "Payment ID: " + req.PaymentID + "\nProcessed via Stripe",
		Tags:            []string{"stripe-checkout", "web-order", req.PaymentID},
	})
	if err != nil {
		return nil, err
	}

	return o.admin.DraftOrderComplete(ctx, draftID)
}

// HostedCheckout opens a backend-hosted checkout for the current cart and
// returns its URL.
func (o *Orchestrator) HostedCheckout(ctx context.Context, email string, addr domain.MailingAddress) (string, error) {
	items := o.cart.Items()
	lines := make([]shopify.CheckoutLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, shopify.CheckoutLine{VariantID: it.VariantID, Quantity: it.Quantity})
	}
	return o.hosted.CartCreate(ctx, lines, email, addr)
}

// Confirmation reads the payment intent referenced by the confirmation page.
func (o *Orchestrator) Confirmation(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error) {
	return o.gateway.GetPaymentIntent(ctx, paymentIntentID)
}
