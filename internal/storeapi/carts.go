package storeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storebot/internal/domain"
)

// productRef normalizes the shapes Strapi uses for an item's product
// relation: a bare id, a populated object, or a {"data": {...}} envelope.
type productRef struct {
	ID    int
	Title string
	Price float64
}

func (r *productRef) UnmarshalJSON(b []byte) error {
	var id int
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		return nil
	}

	var obj struct {
		ID    int     `json:"id"`
		Title string  `json:"title"`
		Price float64 `json:"price"`
		Data  *struct {
			ID    int     `json:"id"`
			Title string  `json:"title"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if obj.Data != nil {
		r.ID = obj.Data.ID
		r.Title = obj.Data.Title
		r.Price = obj.Data.Price
		return nil
	}
	r.ID = obj.ID
	r.Title = obj.Title
	r.Price = obj.Price
	return nil
}

type cartItemJSON struct {
	Product  productRef `json:"product"`
	Quantity int        `json:"quantity"`
}

type cartJSON struct {
	ID         int            `json:"id"`
	DocumentID string         `json:"documentId"`
	Items      []cartItemJSON `json:"items"`
	Attributes *struct {
		Items []cartItemJSON `json:"items"`
	} `json:"attributes"`
}

func (cj cartJSON) toDomain() *domain.Cart {
	raw := cj.Items
	if raw == nil && cj.Attributes != nil {
		raw = cj.Attributes.Items
	}

	cart := &domain.Cart{DocumentID: cj.DocumentID}
	for _, it := range raw {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			Title:     strings.TrimSpace(it.Product.Title),
			Price:     it.Product.Price,
		})
	}
	return cart
}

// GetCart returns the chat's cart with populated product lines, or nil
// if the chat has no cart yet
func (c *Client) GetCart(ctx context.Context, chatID int64) (*domain.Cart, error) {
	query := url.Values{
		"filters[telegram_id][$eq]": {strconv.FormatInt(chatID, 10)},
		"populate[items][populate]": {"product"},
	}
	var resp struct {
		Data []cartJSON `json:"data"`
	}
	if err := c.doJSON(ctx, readTimeout, http.MethodGet, "/api/carts", query, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return resp.Data[0].toDomain(), nil
}

// CreateCart creates an empty cart owned by the chat
func (c *Client) CreateCart(ctx context.Context, chatID int64) (*domain.Cart, error) {
	body := map[string]any{
		"data": map[string]string{"telegram_id": strconv.FormatInt(chatID, 10)},
	}
	var resp struct {
		Data cartJSON `json:"data"`
	}
	if err := c.doJSON(ctx, writeTimeout, http.MethodPost, "/api/carts", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data.toDomain(), nil
}

// ReplaceCartItems overwrites the cart's whole item list. The backend
// has no partial-update primitive for individual lines.
func (c *Client) ReplaceCartItems(ctx context.Context, documentID string, items []domain.CartItem) error {
	lines := make([]map[string]int, 0, len(items))
	for _, it := range items {
		lines = append(lines, map[string]int{
			"product":  it.ProductID,
			"quantity": it.Quantity,
		})
	}
	body := map[string]any{
		"data": map[string]any{"items": lines},
	}
	return c.doJSON(ctx, writeTimeout, http.MethodPut, "/api/carts/"+documentID, nil, body, nil)
}
