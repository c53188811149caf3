// Package shopify speaks the commerce backend's GraphQL APIs: the public
// storefront surface (catalog, customer auth) and the elevated admin surface
// (customer search, draft orders).
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"verse-storefront/internal/domain"
)

const (
	storefrontTokenHeader = "X-Shopify-Storefront-Access-Token"
	adminTokenHeader      = "X-Shopify-Access-Token"
)

// Client posts GraphQL documents to a single endpoint with a fixed access
// token header. Storefront and admin calls use separate clients since the
// tokens carry different privileges.
type Client struct {
	endpoint    string
	tokenHeader string
	token       string
	httpClient  *http.Client
	logger      *log.Logger
}

// NewStorefront builds a client for the public storefront API.
func NewStorefront(storeDomain, apiVersion, accessToken string, logger *log.Logger) *Client {
	return &Client{
		endpoint:    fmt.Sprintf("https://%s/api/%s/graphql.json", storeDomain, apiVersion),
		tokenHeader: storefrontTokenHeader,
		token:       accessToken,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

// NewAdmin builds a client for the elevated admin API.
func NewAdmin(storeDomain, apiVersion, accessToken string, logger *log.Logger) *Client {
	return &Client{
		endpoint:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", storeDomain, apiVersion),
		tokenHeader: adminTokenHeader,
		token:       accessToken,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

// NewWithEndpoint points the client at an explicit URL. Tests use it with
// httptest servers.
func NewWithEndpoint(endpoint, tokenHeader, accessToken string, logger *log.Logger) *Client {
	return &Client{
		endpoint:    endpoint,
		tokenHeader: tokenHeader,
		token:       accessToken,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors,omitempty"`
}

// query posts one GraphQL document and unmarshals the data payload into out.
// GraphQL-level errors come back as *domain.QueryError.
func (c *Client) query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reach backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded gqlResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("parse backend response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		msgs := make([]string, 0, len(decoded.Errors))
		for _, e := range decoded.Errors {
			msgs = append(msgs, e.Message)
		}
		return &domain.QueryError{Messages: msgs}
	}
	if out != nil {
		if err := json.Unmarshal(decoded.Data, out); err != nil {
			return fmt.Errorf("parse backend data: %w", err)
		}
	}
	return nil
}

// userError mirrors the customerUserErrors / userErrors shape.
type userError struct {
	Code    string   `json:"code,omitempty"`
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

func firstUserError(errs []userError) error {
	if len(errs) == 0 {
		return nil
	}
	field := ""
	if len(errs[0].Field) > 0 {
		field = errs[0].Field[len(errs[0].Field)-1]
	}
	return &domain.RemoteUserError{Field: field, Message: errs[0].Message}
}

// moneyV2 is the backend's decimal-string money shape.
type moneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

func (m moneyV2) toMoney() domain.Money {
	return domain.Money{Cents: parseCents(m.Amount), Currency: m.CurrencyCode}
}

// parseCents converts a decimal amount string like "29.99" to cents.
// Malformed input parses to 0.
func parseCents(amount string) int64 {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0
	}
	whole, frac, _ := strings.Cut(amount, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0
	}
	if frac == "" {
		return w * 100
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return w * 100
	}
	if w < 0 {
		return w*100 - f
	}
	return w*100 + f
}
