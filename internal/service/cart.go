package service

import (
	"context"
	"fmt"

	"storebot/internal/domain"
)

// CartService owns cart line reconciliation. The backend only supports
// replacing the whole item list, so every mutation is a read-modify-write
// of all lines. Two concurrent mutations for the same chat race: both
// read the same prior list and the later write discards the earlier
// one's effect.
type CartService struct {
	store StoreClient
}

// NewCartService creates a new cart service
func NewCartService(store StoreClient) *CartService {
	return &CartService{store: store}
}

// Get returns the chat's cart, or nil if none exists yet
func (s *CartService) Get(ctx context.Context, chatID int64) (*domain.Cart, error) {
	return s.store.GetCart(ctx, chatID)
}

// Add merges one "add quantity of product" intent into the cart and
// writes the whole item list back. An existing line for the product is
// incremented; otherwise a new line is appended. The cart is created
// lazily on first add.
func (s *CartService) Add(ctx context.Context, chatID int64, productID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	cart, err := s.store.GetCart(ctx, chatID)
	if err != nil {
		return err
	}
	if cart == nil {
		cart, err = s.store.CreateCart(ctx, chatID)
		if err != nil {
			return err
		}
	}

	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}

	return s.store.ReplaceCartItems(ctx, cart.DocumentID, items)
}

// Remove drops the product's line from the cart, preserving the order
// of the remaining lines. A chat without a cart is a no-op; a product
// that is not in the cart leaves the list unchanged.
func (s *CartService) Remove(ctx context.Context, chatID int64, productID int) error {
	cart, err := s.store.GetCart(ctx, chatID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}

	items := make([]domain.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}

	return s.store.ReplaceCartItems(ctx, cart.DocumentID, items)
}
