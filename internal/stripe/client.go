// Package stripe is a minimal payment-gateway client: it creates and reads
// payment intents over the form-encoded v1 API. Card collection itself
// happens in the gateway's hosted payment element; the server only ever
// handles the client secret and the intent id.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://api.stripe.com"

// Client calls the gateway with a secret API key.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *log.Logger
}

// New builds a Client against the production endpoint.
func New(secretKey string, logger *log.Logger) *Client {
	return NewWithBaseURL(defaultBaseURL, secretKey, logger)
}

// NewWithBaseURL is used by tests to point at an httptest server.
func NewWithBaseURL(baseURL, secretKey string, logger *log.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// PaymentIntent is the subset of the gateway record the storefront needs.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent registers an amount to collect and returns the intent
// with its client secret for the hosted payment form.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64, currency, receiptEmail string, metadata map[string]string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	if receiptEmail != "" {
		form.Set("receipt_email", receiptEmail)
	}
	form.Set("automatic_payment_methods[enabled]", "true")
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.do(req)
}

// GetPaymentIntent reads an intent by id, used by the order-confirmation
// lookup.
func (c *Client) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payment_intents/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*PaymentIntent, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var decoded apiError
		if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error.Message != "" {
			return nil, fmt.Errorf("payment gateway: %s", decoded.Error.Message)
		}
		return nil, fmt.Errorf("payment gateway http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("parse payment intent: %w", err)
	}
	return &intent, nil
}
