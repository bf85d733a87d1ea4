package errors

import (
	"sync"
	"time"
)

// maxMessages bounds the history kept by TUIHandler.
const maxMessages = 50

// MessageType classifies a TUI status message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// String returns the status line prefix for t.
func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "saved"
	default:
		return "info"
	}
}

// Message is one status line entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler keeps messages for the status line and notifies onMessage
// for each new one.
type TUIHandler struct {
	mu        sync.RWMutex
	messages  []Message
	onMessage func(Message)
	now       func() time.Time
}

// NewTUIHandler returns a handler. onMessage may be nil.
func NewTUIHandler(onMessage func(Message)) *TUIHandler {
	return &TUIHandler{onMessage: onMessage, now: time.Now}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, MessageTypeSuccess) }

func (h *TUIHandler) add(text string, t MessageType) {
	h.mu.Lock()
	msg := Message{Text: text, Type: t, Timestamp: h.now()}
	h.messages = append(h.messages, msg)
	if len(h.messages) > maxMessages {
		h.messages = append([]Message(nil), h.messages[len(h.messages)-maxMessages:]...)
	}
	callback := h.onMessage
	h.mu.Unlock()

	if callback != nil {
		callback(msg)
	}
}

// Latest returns the newest message.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// All returns a copy of the retained messages, oldest first.
func (h *TUIHandler) All() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Clear drops every message.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
