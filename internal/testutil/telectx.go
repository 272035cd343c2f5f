package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// Ctx is a fake telebot context for router tests. It records outgoing
// messages, deletions and callback acknowledgements; methods that are
// not overridden panic through the embedded nil interface, which makes
// unexpected context usage fail the test loudly.
type Ctx struct {
	tele.Context

	ChatID       int64
	MessageText  string
	CallbackData string

	Sent      []any
	SentOpts  [][]any
	Deleted   int
	Responded int
	DeleteErr error
}

// NewTextCtx fakes an incoming text message
func NewTextCtx(chatID int64, text string) *Ctx {
	return &Ctx{ChatID: chatID, MessageText: text}
}

// NewCallbackCtx fakes an incoming callback selection
func NewCallbackCtx(chatID int64, data string) *Ctx {
	return &Ctx{ChatID: chatID, CallbackData: data}
}

func (c *Ctx) Chat() *tele.Chat {
	return &tele.Chat{ID: c.ChatID}
}

func (c *Ctx) Sender() *tele.User {
	return &tele.User{ID: c.ChatID}
}

func (c *Ctx) Message() *tele.Message {
	if c.CallbackData != "" {
		// The screen the callback button was attached to
		return &tele.Message{ID: 1, Chat: &tele.Chat{ID: c.ChatID}}
	}
	if c.MessageText == "" {
		return nil
	}
	return &tele.Message{ID: 1, Text: c.MessageText, Chat: &tele.Chat{ID: c.ChatID}}
}

func (c *Ctx) Callback() *tele.Callback {
	if c.CallbackData == "" {
		return nil
	}
	return &tele.Callback{
		Data:    c.CallbackData,
		Message: &tele.Message{ID: 1, Chat: &tele.Chat{ID: c.ChatID}},
	}
}

func (c *Ctx) Text() string {
	return c.MessageText
}

func (c *Ctx) Send(what any, opts ...any) error {
	c.Sent = append(c.Sent, what)
	c.SentOpts = append(c.SentOpts, opts)
	return nil
}

func (c *Ctx) Delete() error {
	c.Deleted++
	return c.DeleteErr
}

func (c *Ctx) Respond(resp ...*tele.CallbackResponse) error {
	c.Responded++
	return nil
}

// SentTexts returns the plain-text messages sent through the context
func (c *Ctx) SentTexts() []string {
	texts := make([]string, 0, len(c.Sent))
	for _, what := range c.Sent {
		if s, ok := what.(string); ok {
			texts = append(texts, s)
		}
	}
	return texts
}
