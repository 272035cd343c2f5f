package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ErrInvalidEmail marks text that does not look like an email address.
// The checkout flow recovers from it by re-prompting.
var ErrInvalidEmail = errors.New("invalid email address")

// ValidateEmail reports whether the text is an acceptable checkout email
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ClientService maintains client profiles on the store backend
type ClientService struct {
	store StoreClient
}

// NewClientService creates a new client profile service
func NewClientService(store StoreClient) *ClientService {
	return &ClientService{store: store}
}

// UpsertEmail stores the checkout email on the chat's client profile,
// creating the profile on first checkout
func (s *ClientService) UpsertEmail(ctx context.Context, chatID int64, email string) error {
	if !ValidateEmail(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	client, err := s.store.GetClient(ctx, chatID)
	if err != nil {
		return err
	}
	if client == nil {
		_, err = s.store.CreateClient(ctx, chatID, email)
		return err
	}

	return s.store.UpdateClientEmail(ctx, client, email)
}
