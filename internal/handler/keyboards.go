package handler

import (
	"strconv"

	"storebot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Keyboard builders are pure: domain lists in, markup out. Callback
// payloads are raw data strings (bare product id, "cart",
// "add_to_cart:<id>", "back", "remove:<id>", "back_to_menu", "pay") so
// every selection lands in the state dispatcher.

// productsMenuMarkup lists one button per product plus the cart button.
// Entries without an id or title are skipped.
func productsMenuMarkup(products []domain.Product) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	rows := make([]tele.Row, 0, len(products)+1)
	for _, p := range products {
		if p.ID == 0 || p.Title == "" {
			continue
		}
		rows = append(rows, markup.Row(tele.Btn{Text: p.Title, Data: strconv.Itoa(p.ID)}))
	}
	rows = append(rows, markup.Row(tele.Btn{Text: "Моя корзина", Data: "cart"}))

	markup.Inline(rows...)
	return markup
}

// productDetailsMarkup builds the product card actions
func productDetailsMarkup(productID int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(tele.Btn{Text: "Добавить в корзину", Data: "add_to_cart:" + strconv.Itoa(productID)}),
		markup.Row(tele.Btn{Text: "Назад к списку", Data: "back"}),
		markup.Row(tele.Btn{Text: "Моя корзина", Data: "cart"}),
	)
	return markup
}

// emptyCartMarkup builds the empty-cart screen actions
func emptyCartMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(tele.Btn{Text: "В меню", Data: "back_to_menu"}),
	)
	return markup
}

// cartMarkup builds one remove button per cart line plus navigation.
// Lines without a product id are skipped.
func cartMarkup(items []domain.CartItem) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	rows := make([]tele.Row, 0, len(items)+2)
	for _, it := range items {
		if it.ProductID == 0 {
			continue
		}
		title := it.Title
		if title == "" {
			title = untitled
		}
		rows = append(rows, markup.Row(tele.Btn{
			Text: "Убрать " + title,
			Data: "remove:" + strconv.Itoa(it.ProductID),
		}))
	}
	rows = append(rows, markup.Row(tele.Btn{Text: "В меню", Data: "back_to_menu"}))
	rows = append(rows, markup.Row(tele.Btn{Text: "Оплатить", Data: "pay"}))

	markup.Inline(rows...)
	return markup
}
