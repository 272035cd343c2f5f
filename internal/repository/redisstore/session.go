package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"storebot/internal/domain"

	"github.com/redis/go-redis/v9"
)

// SessionRepo implements repository.SessionRepository on Redis.
// The client is shared process-wide; go-redis connection pooling makes
// it safe for concurrent use.
type SessionRepo struct {
	client *redis.Client
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(client *redis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

// GetState returns the chat's conversation state. A missing key means
// the chat has no session yet and reads as START; a stored token
// outside the known set surfaces domain.ErrUnknownState.
func (r *SessionRepo) GetState(ctx context.Context, chatID int64) (domain.SessionState, error) {
	raw, err := r.client.Get(ctx, sessionKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.StateStart, nil
	}
	if err != nil {
		return "", fmt.Errorf("get session state: %w", err)
	}

	return domain.ParseState(raw)
}

// SetState persists the chat's conversation state. Sessions are never
// expired or deleted.
func (r *SessionRepo) SetState(ctx context.Context, chatID int64, state domain.SessionState) error {
	if err := r.client.Set(ctx, sessionKey(chatID), string(state), 0).Err(); err != nil {
		return fmt.Errorf("set session state: %w", err)
	}
	return nil
}

func sessionKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
