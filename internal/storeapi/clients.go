package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storebot/internal/domain"
)

type clientJSON struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Email      string `json:"email"`
}

func (cj clientJSON) toDomain() *domain.Client {
	return &domain.Client{
		ID:         cj.ID,
		DocumentID: cj.DocumentID,
		Email:      cj.Email,
	}
}

// GetClient returns the chat's client profile, or nil if none exists
func (c *Client) GetClient(ctx context.Context, chatID int64) (*domain.Client, error) {
	query := url.Values{
		"filters[telegram_id][$eq]": {strconv.FormatInt(chatID, 10)},
	}
	var resp struct {
		Data []clientJSON `json:"data"`
	}
	if err := c.doJSON(ctx, readTimeout, http.MethodGet, "/api/clients", query, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return resp.Data[0].toDomain(), nil
}

// CreateClient creates a client profile for the chat
func (c *Client) CreateClient(ctx context.Context, chatID int64, email string) (*domain.Client, error) {
	body := map[string]any{
		"data": map[string]string{
			"telegram_id": strconv.FormatInt(chatID, 10),
			"email":       email,
		},
	}
	var resp struct {
		Data clientJSON `json:"data"`
	}
	if err := c.doJSON(ctx, writeTimeout, http.MethodPost, "/api/clients", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data.toDomain(), nil
}

// UpdateClientEmail stores a new email on an existing profile. Updates
// address the backend document identity when the record carries one,
// falling back to the numeric id for older records.
func (c *Client) UpdateClientEmail(ctx context.Context, client *domain.Client, email string) error {
	path := "/api/clients/" + client.DocumentID
	if client.DocumentID == "" {
		path = "/api/clients/" + strconv.Itoa(client.ID)
	}
	body := map[string]any{
		"data": map[string]string{"email": email},
	}
	return c.doJSON(ctx, writeTimeout, http.MethodPut, path, nil, body, nil)
}
