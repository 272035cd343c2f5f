package repository

import (
	"context"

	"storebot/internal/domain"
)

// SessionRepository defines per-chat conversation state persistence.
// GetState never fails for an absent session: a chat with no stored
// token reads as START.
type SessionRepository interface {
	GetState(ctx context.Context, chatID int64) (domain.SessionState, error)
	SetState(ctx context.Context, chatID int64, state domain.SessionState) error
}
