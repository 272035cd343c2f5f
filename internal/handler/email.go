package handler

import (
	"context"
	"errors"
	"strings"

	"storebot/internal/domain"
	"storebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleWaitingEmail captures the checkout email. Anything that does
// not look like an address keeps the chat in the same state with a
// fresh prompt.
func (h *Handler) handleWaitingEmail(ctx context.Context, c tele.Context, chatID int64) (domain.SessionState, error) {
	msg := c.Message()
	if c.Callback() != nil || msg == nil || msg.Text == "" {
		if err := c.Send("Пришлите почту текстом"); err != nil {
			return "", err
		}
		return domain.StateWaitingEmail, nil
	}

	email := strings.TrimSpace(msg.Text)

	err := h.clients.UpsertEmail(ctx, chatID, email)
	if errors.Is(err, service.ErrInvalidEmail) {
		if err := c.Send("Похоже, это не email. Пример: name@gmail.com\nПопробуй ещё раз:"); err != nil {
			return "", err
		}
		return domain.StateWaitingEmail, nil
	}
	if err != nil {
		return "", err
	}

	h.logger.Info("Checkout email saved", zap.Int64("chat_id", chatID))

	if err := c.Send("Почта сохранена!"); err != nil {
		return "", err
	}
	if err := h.sendProductsMenu(ctx, c); err != nil {
		return "", err
	}
	return domain.StateMenu, nil
}
