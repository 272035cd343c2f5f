package service

import (
	"context"

	"storebot/internal/domain"
)

// StoreClient is the store backend surface the services depend on,
// implemented by storeapi.Client
type StoreClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	GetCart(ctx context.Context, chatID int64) (*domain.Cart, error)
	CreateCart(ctx context.Context, chatID int64) (*domain.Cart, error)
	ReplaceCartItems(ctx context.Context, documentID string, items []domain.CartItem) error
	GetClient(ctx context.Context, chatID int64) (*domain.Client, error)
	CreateClient(ctx context.Context, chatID int64, email string) (*domain.Client, error)
	UpdateClientEmail(ctx context.Context, client *domain.Client, email string) error
}
