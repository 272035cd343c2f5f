package storeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storebot/internal/domain"
)

type productJSON struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Picture     *struct {
		URL string `json:"url"`
	} `json:"picture"`
}

func (p productJSON) toDomain(baseURL string) domain.Product {
	prod := domain.Product{
		ID:          p.ID,
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Price:       p.Price,
	}
	if p.Picture != nil && p.Picture.URL != "" {
		prod.PictureURL = resolveURL(baseURL, p.Picture.URL)
	}
	return prod
}

// resolveURL makes upload paths absolute; Strapi serves media URLs
// relative to its own host
func resolveURL(base, u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return base + u
}

// ListProducts returns the full catalog
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var resp struct {
		Data []productJSON `json:"data"`
	}
	if err := c.doJSON(ctx, readTimeout, http.MethodGet, "/api/products", nil, nil, &resp); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp.Data))
	for _, p := range resp.Data {
		products = append(products, p.toDomain(c.baseURL))
	}
	return products, nil
}

// GetProduct fetches one product by id. Not every catalog entry is
// addressable directly, so a 404 falls back to a filtered list query
// for the same id; both paths produce the same Product shape.
func (c *Client) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	query := url.Values{"populate": {"picture"}}

	var direct struct {
		Data *productJSON `json:"data"`
	}
	err := c.doJSON(ctx, readTimeout, http.MethodGet, "/api/products/"+strconv.Itoa(productID), query, nil, &direct)
	if err == nil && direct.Data != nil {
		prod := direct.Data.toDomain(c.baseURL)
		return &prod, nil
	}
	if err != nil && !errors.Is(err, errNotFound) {
		return nil, err
	}

	query = url.Values{
		"filters[id][$eq]": {strconv.Itoa(productID)},
		"populate":         {"picture"},
	}
	var filtered struct {
		Data []productJSON `json:"data"`
	}
	if err := c.doJSON(ctx, readTimeout, http.MethodGet, "/api/products", query, nil, &filtered); err != nil {
		return nil, err
	}
	if len(filtered.Data) == 0 {
		return nil, fmt.Errorf("%w: product %d", ErrUnavailable, productID)
	}

	prod := filtered.Data[0].toDomain(c.baseURL)
	return &prod, nil
}
