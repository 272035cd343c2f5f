package testutil

import (
	"storebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestProduct creates a test product
func NewTestProduct(id int, title string, price float64) domain.Product {
	return domain.Product{
		ID:          id,
		Title:       title,
		Description: "описание " + title,
		Price:       price,
	}
}

// NewTestCart creates a test cart with the given lines
func NewTestCart(documentID string, items ...domain.CartItem) *domain.Cart {
	return &domain.Cart{
		DocumentID: documentID,
		Items:      items,
	}
}
