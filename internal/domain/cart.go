package domain

// CartItem is one product-quantity line inside a cart. Title and Price
// are filled on reads with product population and are display-only;
// writes carry just the product id and quantity.
type CartItem struct {
	ProductID int
	Quantity  int
	Title     string
	Price     float64
}

// Cart is a chat's cart as stored by the backend. DocumentID is the
// backend's own identity for the cart record and is what updates are
// addressed to, not the owning chat id.
type Cart struct {
	DocumentID string
	Items      []CartItem
}

// Client is a client profile record on the store backend
type Client struct {
	ID         int
	DocumentID string
	Email      string
}
