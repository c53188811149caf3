// Package catalog exposes the read-only product queries. There is no cache;
// every call hits the backend.
package catalog

import (
	"context"

	"verse-storefront/internal/domain"
)

// Backend is the storefront query slice the service needs.
type Backend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	backend Backend
}

func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// ListProducts returns one fixed-size page of products.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.backend.ListProducts(ctx)
}

// GetProduct fetches a product by the id from the request path; the backend
// global id is constructed from it.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.backend.GetProduct(ctx, id)
}
