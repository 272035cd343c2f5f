package handler

import (
	"context"

	"storebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart opens the conversation with the product menu
func (h *Handler) handleStart(ctx context.Context, c tele.Context, chatID int64) (domain.SessionState, error) {
	h.logger.Info("Chat entered store", zap.Int64("chat_id", chatID))

	if err := h.sendProductsMenu(ctx, c); err != nil {
		return "", err
	}
	return domain.StateMenu, nil
}
