package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"storebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// untitled substitutes for catalog entries with a missing title
const untitled = "Без названия"

// sendProductsMenu renders the product list screen
func (h *Handler) sendProductsMenu(ctx context.Context, c tele.Context) error {
	products, err := h.catalog.Products(ctx)
	if err != nil {
		return err
	}
	return c.Send("Пожалуйста выберите:", productsMenuMarkup(products))
}

// sendProductDetails renders one product card, as a photo with caption
// when the catalog has a picture for it
func (h *Handler) sendProductDetails(ctx context.Context, c tele.Context, productID int) error {
	product, err := h.catalog.Product(ctx, productID)
	if err != nil {
		return err
	}

	text := productCaption(product)
	markup := productDetailsMarkup(productID)

	if product.PictureURL != "" {
		photo := &tele.Photo{File: tele.FromURL(product.PictureURL), Caption: text}
		return c.Send(photo, markup)
	}
	return c.Send(text, markup)
}

// productCaption builds the product card text, degrading gracefully
// for entries with missing fields
func productCaption(p *domain.Product) string {
	title := p.Title
	if title == "" {
		title = untitled
	}

	header := title
	if p.Price > 0 {
		header = fmt.Sprintf("%s (%s руб.за кг)", title, formatPrice(p.Price))
	}
	return strings.TrimSpace(header + "\n\n" + p.Description)
}

// sendCart renders the cart screen with per-line subtotals and the
// grand total, or the empty-cart screen
func (h *Handler) sendCart(ctx context.Context, c tele.Context, chatID int64) error {
	cart, err := h.cart.Get(ctx, chatID)
	if err != nil {
		return err
	}
	if cart == nil || len(cart.Items) == 0 {
		return c.Send("Корзина пуста.", emptyCartMarkup())
	}

	lines := []string{"Ваша корзина:", ""}
	total := 0
	for _, it := range cart.Items {
		title := it.Title
		if title == "" {
			title = untitled
		}
		price := int(it.Price)
		subtotal := price * it.Quantity
		total += subtotal
		lines = append(lines, fmt.Sprintf("%s — %d шт. × %d = %d", title, it.Quantity, price, subtotal))
	}
	lines = append(lines, "", fmt.Sprintf("Итого: %d руб.", total))

	return c.Send(strings.Join(lines, "\n"), cartMarkup(cart.Items))
}

// deleteScreen removes the screen a callback came from before the next
// one replaces it. A message that is already gone is a no-op.
func (h *Handler) deleteScreen(c tele.Context, chatID int64) {
	if c.Callback() == nil || c.Message() == nil {
		return
	}

	if err := c.Delete(); err != nil {
		if isAlreadyGone(err) {
			h.logger.Debug("Screen already deleted", zap.Int64("chat_id", chatID))
			return
		}
		h.logger.Warn("Failed to delete previous screen",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// isAlreadyGone reports Telegram's "nothing left to delete" responses
func isAlreadyGone(err error) bool {
	s := err.Error()
	return strings.Contains(s, "message to delete not found") ||
		strings.Contains(s, "message can't be deleted")
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
