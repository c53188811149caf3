package shopify

import (
	"context"
	"fmt"

	"verse-storefront/internal/domain"
)

const findCustomerQuery = `
query getCustomerByEmail($query: String!) {
  customers(first: 1, query: $query) {
    edges {
      node {
        id
        email
        firstName
        lastName
      }
    }
  }
}
`

const draftOrderCreateMutation = `
mutation draftOrderCreate($input: DraftOrderInput!) {
  draftOrderCreate(input: $input) {
    draftOrder {
      id
      name
    }
    userErrors {
      field
      message
    }
  }
}
`

const draftOrderCompleteMutation = `
mutation draftOrderComplete($id: ID!) {
  draftOrderComplete(id: $id) {
    draftOrder {
      id
      order {
        id
        name
        orderNumber
        customer {
          id
          email
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}
`

// FindCustomerIDByEmail looks up an existing customer by email on the admin
// surface. An empty id with nil error means no match.
func (c *Client) FindCustomerIDByEmail(ctx context.Context, email string) (string, error) {
	var data struct {
		Customers struct {
			Edges []struct {
				Node struct {
					ID string `json:"id"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"customers"`
	}
	vars := map[string]interface{}{"query": fmt.Sprintf("email:%s", email)}
	if err := c.query(ctx, findCustomerQuery, vars, &data); err != nil {
		return "", err
	}
	if len(data.Customers.Edges) == 0 {
		return "", nil
	}
	return data.Customers.Edges[0].Node.ID, nil
}

// DraftOrderLine is a variant reference plus quantity for draft creation.
type DraftOrderLine struct {
	VariantID string
	Quantity  int
}

// DraftOrderInput carries everything needed to stage an order.
type DraftOrderInput struct {
	Lines           []DraftOrderLine
	Email           string
	CustomerID      string
	ShippingAddress domain.MailingAddress
	Note            string
	Tags            []string
}

// DraftOrderCreate stages an order and returns the draft order id.
func (c *Client) DraftOrderCreate(ctx context.Context, in DraftOrderInput) (string, error) {
	lineInputs := make([]map[string]interface{}, 0, len(in.Lines))
	for _, l := range in.Lines {
		lineInputs = append(lineInputs, map[string]interface{}{
			"variantId": VariantGID(l.VariantID),
			"quantity":  l.Quantity,
		})
	}
	addr := map[string]interface{}{
		"firstName": in.ShippingAddress.FirstName,
		"lastName":  in.ShippingAddress.LastName,
		"address1":  in.ShippingAddress.Address1,
		"address2":  in.ShippingAddress.Address2,
		"city":      in.ShippingAddress.City,
		"province":  in.ShippingAddress.Province,
		"country":   in.ShippingAddress.Country,
		"zip":       in.ShippingAddress.Zip,
	}
	input := map[string]interface{}{
		"lineItems":       lineInputs,
		"email":           in.Email,
		"shippingAddress": addr,
		"billingAddress":  addr,
		"note":            in.Note,
		"tags":            in.Tags,
	}
	if in.CustomerID != "" {
		input["customerId"] = in.CustomerID
	}

	var data struct {
		Payload struct {
			DraftOrder *struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"draftOrder"`
			UserErrors []userError `json:"userErrors"`
		} `json:"draftOrderCreate"`
	}
	if err := c.query(ctx, draftOrderCreateMutation, map[string]interface{}{"input": input}, &data); err != nil {
		return "", err
	}
	if err := firstUserError(data.Payload.UserErrors); err != nil {
		return "", err
	}
	if data.Payload.DraftOrder == nil {
		return "", &domain.RemoteUserError{Message: "draft order not created"}
	}
	return data.Payload.DraftOrder.ID, nil
}

// CompletedOrder identifies the real order a completed draft became.
type CompletedOrder struct {
	ID             string
	Name           string
	OrderNumber    int
	CustomerLinked bool
}

// DraftOrderComplete converts a draft into a real order.
func (c *Client) DraftOrderComplete(ctx context.Context, draftOrderID string) (*CompletedOrder, error) {
	var data struct {
		Payload struct {
			DraftOrder *struct {
				ID    string `json:"id"`
				Order *struct {
					ID          string `json:"id"`
					Name        string `json:"name"`
					OrderNumber int    `json:"orderNumber"`
					Customer    *struct {
						ID    string `json:"id"`
						Email string `json:"email"`
					} `json:"customer"`
				} `json:"order"`
			} `json:"draftOrder"`
			UserErrors []userError `json:"userErrors"`
		} `json:"draftOrderComplete"`
	}
	vars := map[string]interface{}{"id": draftOrderID}
	if err := c.query(ctx, draftOrderCompleteMutation, vars, &data); err != nil {
		return nil, err
	}
	if err := firstUserError(data.Payload.UserErrors); err != nil {
		return nil, err
	}
	if data.Payload.DraftOrder == nil || data.Payload.DraftOrder.Order == nil {
		return nil, &domain.RemoteUserError{Message: "draft order not completed"}
	}
	o := data.Payload.DraftOrder.Order
	return &CompletedOrder{
		ID:             o.ID,
		Name:           o.Name,
		OrderNumber:    o.OrderNumber,
		CustomerLinked: o.Customer != nil,
	}, nil
}
