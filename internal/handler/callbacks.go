package handler

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"storebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleMenu reacts to menu-screen buttons: a bare product id opens the
// product card, "cart" opens the cart. Free text has no meaning on this
// screen and is ignored.
func (h *Handler) handleMenu(ctx context.Context, c tele.Context, chatID int64) (domain.SessionState, error) {
	cb := c.Callback()
	if cb == nil {
		return domain.StateMenu, nil
	}
	data := cleanCallbackData(cb.Data)

	switch data {
	case "back":
		if err := h.sendProductsMenu(ctx, c); err != nil {
			return "", err
		}
		return domain.StateMenu, nil
	case "cart":
		h.deleteScreen(c, chatID)
		if err := h.sendCart(ctx, c, chatID); err != nil {
			return "", err
		}
		return domain.StateCart, nil
	}

	productID, err := strconv.Atoi(data)
	if err != nil {
		h.logger.Warn("Unhandled menu callback",
			zap.String("data", data),
			zap.Int64("chat_id", chatID),
		)
		return domain.StateMenu, nil
	}

	h.deleteScreen(c, chatID)
	if err := h.sendProductDetails(ctx, c, productID); err != nil {
		return "", err
	}
	return domain.StateDescription, nil
}

// handleDescription reacts to product-card buttons. Adding to the cart
// keeps the chat on the card so more can be added.
func (h *Handler) handleDescription(ctx context.Context, c tele.Context, chatID int64) (domain.SessionState, error) {
	cb := c.Callback()
	if cb == nil {
		return domain.StateDescription, nil
	}
	data := cleanCallbackData(cb.Data)

	switch {
	case data == "back":
		h.deleteScreen(c, chatID)
		if err := h.sendProductsMenu(ctx, c); err != nil {
			return "", err
		}
		return domain.StateMenu, nil

	case data == "cart":
		h.deleteScreen(c, chatID)
		if err := h.sendCart(ctx, c, chatID); err != nil {
			return "", err
		}
		return domain.StateCart, nil

	case strings.HasPrefix(data, "add_to_cart:"):
		productID, err := strconv.Atoi(strings.TrimPrefix(data, "add_to_cart:"))
		if err != nil {
			h.logger.Warn("Malformed add_to_cart callback",
				zap.String("data", data),
				zap.Int64("chat_id", chatID),
			)
			return domain.StateDescription, nil
		}

		if err := h.cart.Add(ctx, chatID, productID, 1); err != nil {
			return "", err
		}

		h.logger.Info("Product added to cart",
			zap.Int64("chat_id", chatID),
			zap.Int("product_id", productID),
		)

		if err := c.Send("Добавлено в корзину"); err != nil {
			return "", err
		}
		return domain.StateDescription, nil
	}

	return domain.StateDescription, nil
}

// handleCart reacts to cart-screen buttons: removing a line re-renders
// the cart, "pay" starts the email capture flow
func (h *Handler) handleCart(ctx context.Context, c tele.Context, chatID int64) (domain.SessionState, error) {
	cb := c.Callback()
	if cb == nil {
		return domain.StateCart, nil
	}
	data := cleanCallbackData(cb.Data)

	h.deleteScreen(c, chatID)

	switch {
	case data == "back_to_menu":
		if err := h.sendProductsMenu(ctx, c); err != nil {
			return "", err
		}
		return domain.StateMenu, nil

	case strings.HasPrefix(data, "remove:"):
		productID, err := strconv.Atoi(strings.TrimPrefix(data, "remove:"))
		if err != nil {
			h.logger.Warn("Malformed remove callback",
				zap.String("data", data),
				zap.Int64("chat_id", chatID),
			)
		} else {
			if err := h.cart.Remove(ctx, chatID, productID); err != nil {
				return "", err
			}
			h.logger.Info("Product removed from cart",
				zap.Int64("chat_id", chatID),
				zap.Int("product_id", productID),
			)
		}

	case data == "pay":
		if err := c.Send("Напишите, пожалуйста, свою почту для оформления заказа"); err != nil {
			return "", err
		}
		return domain.StateWaitingEmail, nil
	}

	// Anything else re-renders the cart
	if err := h.sendCart(ctx, c, chatID); err != nil {
		return "", err
	}
	return domain.StateCart, nil
}
