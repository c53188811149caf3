package shopify

import (
	"context"
	"time"

	"verse-storefront/internal/domain"
)

// catalogPageSize caps product listings; no pagination cursor is followed.
const catalogPageSize = 20

const listProductsQuery = `
query listProducts($first: Int!) {
  products(first: $first) {
    edges {
      node {
        id
        title
        description
        vendor
        productType
        tags
        createdAt
        updatedAt
        options {
          name
          values
        }
        images(first: 5) {
          edges {
            node {
              url
            }
          }
        }
        variants(first: 20) {
          edges {
            node {
              id
              title
              price {
                amount
                currencyCode
              }
              compareAtPrice {
                amount
                currencyCode
              }
              availableForSale
              quantityAvailable
              selectedOptions {
                name
                value
              }
              image {
                url
              }
            }
          }
        }
      }
    }
  }
}
`

const getProductQuery = `
query getProduct($id: ID!) {
  product(id: $id) {
    id
    title
    description
    vendor
    productType
    tags
    createdAt
    updatedAt
    options {
      name
      values
    }
    images(first: 5) {
      edges {
        node {
          url
        }
      }
    }
    variants(first: 20) {
      edges {
        node {
          id
          title
          price {
            amount
            currencyCode
          }
          compareAtPrice {
            amount
            currencyCode
          }
          availableForSale
          quantityAvailable
          selectedOptions {
            name
            value
          }
          image {
            url
          }
        }
      }
    }
  }
}
`

type imageNode struct {
	URL string `json:"url"`
}

type variantNode struct {
	ID                string              `json:"id"`
	Title             string              `json:"title"`
	Price             moneyV2             `json:"price"`
	CompareAtPrice    *moneyV2            `json:"compareAtPrice"`
	AvailableForSale  bool                `json:"availableForSale"`
	QuantityAvailable *int                `json:"quantityAvailable"`
	SelectedOptions   []domain.OptionPair `json:"selectedOptions"`
	Image             *imageNode          `json:"image"`
}

type productNode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"productType"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Options     []struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"options"`
	Images struct {
		Edges []struct {
			Node imageNode `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node variantNode `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (n productNode) toDomain() domain.Product {
	p := domain.Product{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Vendor:      n.Vendor,
		ProductType: n.ProductType,
		Tags:        n.Tags,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	for _, o := range n.Options {
		p.Options = append(p.Options, domain.ProductOption{Name: o.Name, Values: o.Values})
	}
	for _, e := range n.Images.Edges {
		p.Images = append(p.Images, e.Node.URL)
	}
	for _, e := range n.Variants.Edges {
		v := domain.Variant{
			ID:                e.Node.ID,
			Title:             e.Node.Title,
			PriceCents:        parseCents(e.Node.Price.Amount),
			Currency:          e.Node.Price.CurrencyCode,
			AvailableForSale:  e.Node.AvailableForSale,
			QuantityAvailable: e.Node.QuantityAvailable,
			SelectedOptions:   e.Node.SelectedOptions,
		}
		if e.Node.CompareAtPrice != nil {
			v.CompareAtCents = parseCents(e.Node.CompareAtPrice.Amount)
		}
		if e.Node.Image != nil {
			v.Image = e.Node.Image.URL
		}
		p.Variants = append(p.Variants, v)
	}
	return p
}

// ListProducts fetches one fixed-size page of products with nested variants,
// options and images.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var data struct {
		Products struct {
			Edges []struct {
				Node productNode `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := c.query(ctx, listProductsQuery, map[string]interface{}{"first": catalogPageSize}, &data); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(data.Products.Edges))
	for _, e := range data.Products.Edges {
		products = append(products, e.Node.toDomain())
	}
	return products, nil
}

// GetProduct fetches a single product by numeric or global id.
// An absent product maps to domain.ErrNotFound.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var data struct {
		Product *productNode `json:"product"`
	}
	if err := c.query(ctx, getProductQuery, map[string]interface{}{"id": ProductGID(id)}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, domain.ErrNotFound
	}
	p := data.Product.toDomain()
	return &p, nil
}

const tokenCreateMutation = `
mutation customerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
  customerAccessTokenCreate(input: $input) {
    customerAccessToken {
      accessToken
      expiresAt
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}
`

const tokenRenewMutation = `
mutation customerAccessTokenRenew($customerAccessToken: String!) {
  customerAccessTokenRenew(customerAccessToken: $customerAccessToken) {
    customerAccessToken {
      accessToken
      expiresAt
    }
    userErrors {
      field
      message
    }
  }
}
`

const tokenDeleteMutation = `
mutation customerAccessTokenDelete($customerAccessToken: String!) {
  customerAccessTokenDelete(customerAccessToken: $customerAccessToken) {
    deletedAccessToken
    userErrors {
      field
      message
    }
  }
}
`

const customerCreateMutation = `
mutation customerCreate($input: CustomerCreateInput!) {
  customerCreate(input: $input) {
    customer {
      id
      email
      firstName
      lastName
    }
    customerUserErrors {
      code
      field
      message
    }
  }
}
`

const customerRecoverMutation = `
mutation customerRecover($email: String!) {
  customerRecover(email: $email) {
    customerUserErrors {
      code
      field
      message
    }
  }
}
`

type accessTokenPayload struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (t *accessTokenPayload) toSession() *domain.Session {
	return &domain.Session{AccessToken: t.AccessToken, ExpiresAt: t.ExpiresAt}
}

// TokenCreate exchanges credentials for a session token.
func (c *Client) TokenCreate(ctx context.Context, email, password string) (*domain.Session, error) {
	var data struct {
		Payload struct {
			CustomerAccessToken *accessTokenPayload `json:"customerAccessToken"`
			CustomerUserErrors  []userError         `json:"customerUserErrors"`
		} `json:"customerAccessTokenCreate"`
	}
	input := map[string]interface{}{"input": map[string]interface{}{"email": email, "password": password}}
	if err := c.query(ctx, tokenCreateMutation, input, &data); err != nil {
		return nil, err
	}
	if err := firstUserError(data.Payload.CustomerUserErrors); err != nil {
		return nil, err
	}
	if data.Payload.CustomerAccessToken == nil {
		return nil, &domain.RemoteUserError{Message: "no access token issued"}
	}
	return data.Payload.CustomerAccessToken.toSession(), nil
}

// TokenRenew exchanges a token for a fresh one with a later expiry.
func (c *Client) TokenRenew(ctx context.Context, accessToken string) (*domain.Session, error) {
	var data struct {
		Payload struct {
			CustomerAccessToken *accessTokenPayload `json:"customerAccessToken"`
			UserErrors          []userError         `json:"userErrors"`
		} `json:"customerAccessTokenRenew"`
	}
	vars := map[string]interface{}{"customerAccessToken": accessToken}
	if err := c.query(ctx, tokenRenewMutation, vars, &data); err != nil {
		return nil, err
	}
	if err := firstUserError(data.Payload.UserErrors); err != nil {
		return nil, err
	}
	if data.Payload.CustomerAccessToken == nil {
		return nil, &domain.RemoteUserError{Message: "token renewal refused"}
	}
	return data.Payload.CustomerAccessToken.toSession(), nil
}

// TokenDelete invalidates a session token server-side.
func (c *Client) TokenDelete(ctx context.Context, accessToken string) error {
	var data struct {
		Payload struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"customerAccessTokenDelete"`
	}
	vars := map[string]interface{}{"customerAccessToken": accessToken}
	if err := c.query(ctx, tokenDeleteMutation, vars, &data); err != nil {
		return err
	}
	return firstUserError(data.Payload.UserErrors)
}

// CustomerCreate registers a customer record. Duplicate emails and similar
// business rules come back as *domain.RemoteUserError.
func (c *Client) CustomerCreate(ctx context.Context, email, password, firstName, lastName string) (string, error) {
	var data struct {
		Payload struct {
			Customer *struct {
				ID string `json:"id"`
			} `json:"customer"`
			CustomerUserErrors []userError `json:"customerUserErrors"`
		} `json:"customerCreate"`
	}
	input := map[string]interface{}{"input": map[string]interface{}{
		"email":            email,
		"password":         password,
		"firstName":        firstName,
		"lastName":         lastName,
		"acceptsMarketing": false,
	}}
	if err := c.query(ctx, customerCreateMutation, input, &data); err != nil {
		return "", err
	}
	if err := firstUserError(data.Payload.CustomerUserErrors); err != nil {
		return "", err
	}
	if data.Payload.Customer == nil {
		return "", &domain.RemoteUserError{Message: "customer not created"}
	}
	return data.Payload.Customer.ID, nil
}

// CustomerRecover triggers a password-reset email. Whether the email exists
// is not revealed; that is the backend's behavior, passed through.
func (c *Client) CustomerRecover(ctx context.Context, email string) error {
	var data struct {
		Payload struct {
			CustomerUserErrors []userError `json:"customerUserErrors"`
		} `json:"customerRecover"`
	}
	if err := c.query(ctx, customerRecoverMutation, map[string]interface{}{"email": email}, &data); err != nil {
		return err
	}
	return firstUserError(data.Payload.CustomerUserErrors)
}
