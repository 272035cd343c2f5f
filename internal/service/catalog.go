package service

import (
	"context"

	"storebot/internal/domain"
)

// CatalogService handles product catalog reads
type CatalogService struct {
	store StoreClient
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store StoreClient) *CatalogService {
	return &CatalogService{store: store}
}

// Products returns the full catalog
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.store.ListProducts(ctx)
}

// Product returns one product by id
func (s *CatalogService) Product(ctx context.Context, productID int) (*domain.Product, error) {
	return s.store.GetProduct(ctx, productID)
}
