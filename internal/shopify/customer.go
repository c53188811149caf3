package shopify

import (
	"context"
	"time"

	"verse-storefront/internal/domain"
)

const getCustomerQuery = `
query getCustomer($customerAccessToken: String!) {
  customer(customerAccessToken: $customerAccessToken) {
    id
    firstName
    lastName
    email
    phone
    acceptsMarketing
    createdAt
    orders(first: 50, sortKey: PROCESSED_AT, reverse: true) {
      edges {
        node {
          id
          name
          orderNumber
          processedAt
          financialStatus
          fulfillmentStatus
          totalPriceV2 {
            amount
            currencyCode
          }
          subtotalPriceV2 {
            amount
            currencyCode
          }
          totalShippingPriceV2 {
            amount
            currencyCode
          }
          totalTaxV2 {
            amount
            currencyCode
          }
          lineItems(first: 50) {
            edges {
              node {
                title
                quantity
                variant {
                  id
                  title
                  image {
                    url
                    altText
                  }
                  priceV2 {
                    amount
                    currencyCode
                  }
                }
              }
            }
          }
          shippingAddress {
            firstName
            lastName
            address1
            address2
            city
            province
            country
            zip
          }
          statusUrl
        }
      }
    }
  }
}
`

type orderNode struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	OrderNumber       int       `json:"orderNumber"`
	ProcessedAt       time.Time `json:"processedAt"`
	FinancialStatus   string    `json:"financialStatus"`
	FulfillmentStatus string    `json:"fulfillmentStatus"`
	TotalPrice        moneyV2   `json:"totalPriceV2"`
	SubtotalPrice     moneyV2   `json:"subtotalPriceV2"`
	TotalShipping     moneyV2   `json:"totalShippingPriceV2"`
	TotalTax          moneyV2   `json:"totalTaxV2"`
	LineItems         struct {
		Edges []struct {
			Node struct {
				Title    string `json:"title"`
				Quantity int    `json:"quantity"`
				Variant  *struct {
					ID    string     `json:"id"`
					Title string     `json:"title"`
					Image *imageNode `json:"image"`
					Price moneyV2    `json:"priceV2"`
				} `json:"variant"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"lineItems"`
	ShippingAddress *domain.MailingAddress `json:"shippingAddress"`
	StatusURL       string                 `json:"statusUrl"`
}

func (n orderNode) toDomain() domain.Order {
	o := domain.Order{
		ID:                n.ID,
		Name:              n.Name,
		OrderNumber:       n.OrderNumber,
		ProcessedAt:       n.ProcessedAt,
		FinancialStatus:   n.FinancialStatus,
		FulfillmentStatus: n.FulfillmentStatus,
		Subtotal:          n.SubtotalPrice.toMoney(),
		ShippingTotal:     n.TotalShipping.toMoney(),
		TaxTotal:          n.TotalTax.toMoney(),
		Total:             n.TotalPrice.toMoney(),
		ShippingAddress:   n.ShippingAddress,
		StatusURL:         n.StatusURL,
	}
	for _, e := range n.LineItems.Edges {
		li := domain.OrderLineItem{
			Title:    e.Node.Title,
			Quantity: e.Node.Quantity,
		}
		if v := e.Node.Variant; v != nil {
			li.VariantID = v.ID
			li.VariantTitle = v.Title
			li.UnitPriceCents = parseCents(v.Price.Amount)
			li.Currency = v.Price.CurrencyCode
			if v.Image != nil {
				li.Image = v.Image.URL
			}
		}
		o.LineItems = append(o.LineItems, li)
	}
	return o
}

// GetCustomer fetches the profile projection plus order history for a valid
// token. A null customer means the token is invalid or expired.
func (c *Client) GetCustomer(ctx context.Context, accessToken string) (*domain.Customer, error) {
	var data struct {
		Customer *struct {
			ID               string    `json:"id"`
			FirstName        string    `json:"firstName"`
			LastName         string    `json:"lastName"`
			Email            string    `json:"email"`
			Phone            string    `json:"phone"`
			AcceptsMarketing bool      `json:"acceptsMarketing"`
			CreatedAt        time.Time `json:"createdAt"`
			Orders           struct {
				Edges []struct {
					Node orderNode `json:"node"`
				} `json:"edges"`
			} `json:"orders"`
		} `json:"customer"`
	}
	vars := map[string]interface{}{"customerAccessToken": accessToken}
	if err := c.query(ctx, getCustomerQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.Customer == nil {
		return nil, domain.ErrSessionExpired
	}
	out := &domain.Customer{
		ID:               data.Customer.ID,
		Email:            data.Customer.Email,
		FirstName:        data.Customer.FirstName,
		LastName:         data.Customer.LastName,
		Phone:            data.Customer.Phone,
		AcceptsMarketing: data.Customer.AcceptsMarketing,
		CreatedAt:        data.Customer.CreatedAt,
	}
	for _, e := range data.Customer.Orders.Edges {
		out.Orders = append(out.Orders, e.Node.toDomain())
	}
	return out, nil
}

const cartCreateMutation = `
mutation cartCreate($input: CartInput!) {
  cartCreate(input: $input) {
    cart {
      id
      checkoutUrl
    }
    userErrors {
      field
      message
    }
  }
}
`

// CheckoutLine is one line handed to the hosted checkout.
type CheckoutLine struct {
	VariantID string
	Quantity  int
}

// CartCreate opens a backend-hosted checkout for the given lines and returns
// its URL.
func (c *Client) CartCreate(ctx context.Context, lines []CheckoutLine, email string, addr domain.MailingAddress) (string, error) {
	lineInputs := make([]map[string]interface{}, 0, len(lines))
	for _, l := range lines {
		lineInputs = append(lineInputs, map[string]interface{}{
			"merchandiseId": l.VariantID,
			"quantity":      l.Quantity,
		})
	}
	input := map[string]interface{}{"input": map[string]interface{}{
		"buyerIdentity": map[string]interface{}{
			"email": email,
			"deliveryAddressPreferences": []map[string]interface{}{
				{"deliveryAddress": map[string]interface{}{
					"firstName": addr.FirstName,
					"lastName":  addr.LastName,
					"address1":  addr.Address1,
					"address2":  addr.Address2,
					"city":      addr.City,
					"province":  addr.Province,
					"country":   addr.Country,
					"zip":       addr.Zip,
					"phone":     addr.Phone,
				}},
			},
		},
		"lines": lineInputs,
	}}

	var data struct {
		Payload struct {
			Cart *struct {
				ID          string `json:"id"`
				CheckoutURL string `json:"checkoutUrl"`
			} `json:"cart"`
			UserErrors []userError `json:"userErrors"`
		} `json:"cartCreate"`
	}
	if err := c.query(ctx, cartCreateMutation, input, &data); err != nil {
		return "", err
	}
	if err := firstUserError(data.Payload.UserErrors); err != nil {
		return "", err
	}
	if data.Payload.Cart == nil || data.Payload.Cart.CheckoutURL == "" {
		return "", &domain.RemoteUserError{Message: "no checkout url returned"}
	}
	return data.Payload.Cart.CheckoutURL, nil
}
