package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storebot/internal/domain"
	"storebot/internal/repository"
	"storebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler is the conversation router: the single authority that reads
// and writes per-chat session state. Every incoming update is funneled
// through Route, which dispatches to the handler for the chat's current
// state and persists the state that handler returns.
type Handler struct {
	bot      *tele.Bot
	sessions repository.SessionRepository
	catalog  *service.CatalogService
	cart     *service.CartService
	clients  *service.ClientService
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	sessions repository.SessionRepository,
	catalog *service.CatalogService,
	cart *service.CartService,
	clients *service.ClientService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		sessions: sessions,
		catalog:  catalog,
		cart:     cart,
		clients:  clients,
		logger:   logger,
	}
}

// RegisterHandlers funnels every update kind into the state dispatcher
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.Route)
	h.bot.Handle(tele.OnText, h.Route)
	h.bot.Handle(tele.OnCallback, h.Route)
}

// Route handles one incoming update: it loads the chat's conversation
// state, runs the state's handler and persists the next state. Exactly
// one state write happens per handled update; a failed handler
// propagates its error and writes nothing, leaving the stored state
// untouched.
func (h *Handler) Route(c tele.Context) error {
	chatID := c.Chat().ID
	ctx := context.Background()

	// Callbacks must be acknowledged even when handling fails
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
	}

	state, err := h.currentState(ctx, c, chatID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownState) {
			// A token outside the dispatch table is a deploy or data
			// defect. Fail loudly and leave the session untouched.
			h.logger.DPanic("Session state outside dispatch table",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			return err
		}
		h.logger.Error("Failed to load session state",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return err
	}

	next, err := h.dispatch(ctx, c, chatID, state)
	if err != nil {
		h.logger.Error("State handler failed",
			zap.Int64("chat_id", chatID),
			zap.String("state", string(state)),
			zap.Error(err),
		)
		return err
	}

	if err := h.sessions.SetState(ctx, chatID, next); err != nil {
		h.logger.Error("Failed to persist session state",
			zap.Int64("chat_id", chatID),
			zap.String("state", string(next)),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// currentState resolves the state to dispatch on. /start is a reset
// signal: it forces START without consulting the store.
func (h *Handler) currentState(ctx context.Context, c tele.Context, chatID int64) (domain.SessionState, error) {
	if c.Callback() == nil && c.Message() != nil && strings.TrimSpace(c.Text()) == "/start" {
		return domain.StateStart, nil
	}
	return h.sessions.GetState(ctx, chatID)
}

// dispatch runs the handler for the current state. The state set is
// closed; anything else must have been rejected by ParseState already.
func (h *Handler) dispatch(ctx context.Context, c tele.Context, chatID int64, state domain.SessionState) (domain.SessionState, error) {
	switch state {
	case domain.StateStart:
		return h.handleStart(ctx, c, chatID)
	case domain.StateMenu:
		return h.handleMenu(ctx, c, chatID)
	case domain.StateDescription:
		return h.handleDescription(ctx, c, chatID)
	case domain.StateCart:
		return h.handleCart(ctx, c, chatID)
	case domain.StateWaitingEmail:
		return h.handleWaitingEmail(ctx, c, chatID)
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownState, state)
}
