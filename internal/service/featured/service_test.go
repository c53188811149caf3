package featured

import (
	"context"
	"errors"
	"testing"

	"verse-storefront/internal/domain"
	featuredrepo "verse-storefront/internal/repository/featured"
)

type stubRepo struct {
	list       []domain.FeaturedProduct
	listErr    error
	active     []domain.FeaturedProduct
	activeErr  error
	created    *domain.FeaturedProduct
	createErr  error
	lastID     string
	lastOrder  int
	updated    *domain.FeaturedProduct
	updateErr  error
	lastInput  featuredrepo.UpdateInput
	deleteErr  error
	lastDelete string
}

func (s *stubRepo) List(_ context.Context) ([]domain.FeaturedProduct, error) {
	return s.list, s.listErr
}

func (s *stubRepo) ListActive(_ context.Context) ([]domain.FeaturedProduct, error) {
	return s.active, s.activeErr
}

func (s *stubRepo) Create(_ context.Context, shopifyProductID string, displayOrder int) (*domain.FeaturedProduct, error) {
	s.lastID = shopifyProductID
	s.lastOrder = displayOrder
	return s.created, s.createErr
}

func (s *stubRepo) Update(_ context.Context, id string, in featuredrepo.UpdateInput) (*domain.FeaturedProduct, error) {
	s.lastID = id
	s.lastInput = in
	return s.updated, s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	s.lastDelete = id
	return s.deleteErr
}

func (s *stubRepo) Upsert(_ context.Context, _ string, _ int, _ bool) error {
	return nil
}

func TestCreate_RequiresProductID(t *testing.T) {
	svc := New(&stubRepo{})

	_, err := svc.Create(context.Background(), "   ", 1)
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreate_NormalizesGlobalID(t *testing.T) {
	repo := &stubRepo{created: &domain.FeaturedProduct{ID: "r1", ShopifyProductID: "123"}}
	svc := New(repo)

	if _, err := svc.Create(context.Background(), "gid://shopify/Product/123", 2); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.lastID != "123" {
		t.Fatalf("stored id = %q, want 123", repo.lastID)
	}
	if repo.lastOrder != 2 {
		t.Fatalf("display order = %d, want 2", repo.lastOrder)
	}
}

func TestCreate_DuplicatePassesThrough(t *testing.T) {
	repo := &stubRepo{createErr: domain.ErrAlreadyExists}
	svc := New(repo)

	_, err := svc.Create(context.Background(), "123", 0)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	repo := &stubRepo{updated: &domain.FeaturedProduct{ID: "r1"}}
	svc := New(repo)

	active := false
	if _, err := svc.Update(context.Background(), "r1", &active, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.lastInput.IsActive == nil || *repo.lastInput.IsActive {
		t.Fatalf("unexpected isActive patch %+v", repo.lastInput.IsActive)
	}
	if repo.lastInput.DisplayOrder != nil {
		t.Fatalf("display order should not be patched")
	}
}

func TestUpdate_RequiresID(t *testing.T) {
	svc := New(&stubRepo{})

	_, err := svc.Update(context.Background(), "", nil, nil)
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestActiveGlobalIDs_ProjectsInDisplayOrder(t *testing.T) {
	repo := &stubRepo{active: []domain.FeaturedProduct{
		{ShopifyProductID: "111", DisplayOrder: 1},
		{ShopifyProductID: "222", DisplayOrder: 2},
	}}
	svc := New(repo)

	ids, err := svc.ActiveGlobalIDs(context.Background())
	if err != nil {
		t.Fatalf("ActiveGlobalIDs: %v", err)
	}
	want := []string{"gid://shopify/Product/111", "gid://shopify/Product/222"}
	if len(ids) != 2 || ids[0] != want[0] || ids[1] != want[1] {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
}

func TestActiveGlobalIDs_EmptyCuration(t *testing.T) {
	svc := New(&stubRepo{})

	ids, err := svc.ActiveGlobalIDs(context.Background())
	if err != nil {
		t.Fatalf("ActiveGlobalIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty list, got %v", ids)
	}
}
