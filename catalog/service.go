package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"catering-api/models"
	"catering-api/store"
)

// Service manages the product catalog: admin writes, public reads.
type Service struct {
	products *store.Collection[*models.Product]
	log      *slog.Logger
}

func NewService(s *store.Store, log *slog.Logger) *Service {
	return &Service{
		products: store.NewCollection[*models.Product](s, store.KeyProducts),
		log:      log,
	}
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if _, err := s.products.Add(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product created", "productId", p.ID, "name", p.Name, "adminId", p.AdminID)
	return p, nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	return s.products.Get(ctx)
}

// Available returns only products currently offered.
func (s *Service) Available(ctx context.Context) ([]*models.Product, error) {
	return s.products.Where(ctx, "available", store.OpEq, true)
}

// Find returns one product by id.
func (s *Service) Find(ctx context.Context, productID string) (*models.Product, error) {
	p, ok, err := s.products.Find(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: product %s", store.ErrNotFound, productID)
	}
	return p, nil
}

// Update applies an explicit patch and returns the updated product.
func (s *Service) Update(ctx context.Context, productID string, patch models.ProductPatch) (*models.Product, error) {
	if patch.Price != nil && *patch.Price <= 0 {
		return nil, &models.ValidationError{Field: "price", Reason: "must be positive"}
	}
	if err := s.products.Update(ctx, productID, func(p *models.Product) { patch.Apply(p) }); err != nil {
		return nil, err
	}
	return s.Find(ctx, productID)
}

// Delete removes a product from the catalog. Orders keep their snapshots.
func (s *Service) Delete(ctx context.Context, productID string) error {
	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}
	s.log.Info("product deleted", "productId", productID)
	return nil
}

// Count returns the catalog size for the dashboard.
func (s *Service) Count(ctx context.Context) (int, error) {
	products, err := s.products.Get(ctx)
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

func validate(p *models.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return models.Missing("name")
	case strings.TrimSpace(p.Description) == "":
		return models.Missing("description")
	case strings.TrimSpace(p.Category) == "":
		return models.Missing("category")
	case p.Price <= 0:
		return &models.ValidationError{Field: "price", Reason: "must be positive"}
	}
	return nil
}
