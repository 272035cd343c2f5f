package domain

import (
	"errors"
	"fmt"
)

// SessionState is the persisted conversation position for a chat.
// The set is closed: the router dispatches with an exhaustive switch
// and anything else is rejected by ParseState.
type SessionState string

const (
	StateStart        SessionState = "START"
	StateMenu         SessionState = "MENU"
	StateDescription  SessionState = "DESCRIPTION"
	StateCart         SessionState = "CART"
	StateWaitingEmail SessionState = "WAITING_EMAIL"
)

// ErrUnknownState marks a stored state token outside the dispatch table.
// It signals a deploy or data defect, never a user error.
var ErrUnknownState = errors.New("unknown session state")

// ParseState validates a raw state token. An empty token means the chat
// has no session yet and defaults to START.
func ParseState(raw string) (SessionState, error) {
	if raw == "" {
		return StateStart, nil
	}
	switch s := SessionState(raw); s {
	case StateStart, StateMenu, StateDescription, StateCart, StateWaitingEmail:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownState, raw)
}
