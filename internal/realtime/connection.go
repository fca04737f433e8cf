// Package realtime carries the push channel: typed events over a
// websocket, behind an abstract connection surface so stores never touch
// the socket library directly.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
)

// Envelope is the wire shape of every realtime message.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope marshals a payload under an event name.
func NewEnvelope(event string, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Type: event}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return Envelope{Type: event, Payload: raw}, nil
}

// Handler consumes one event payload. Handlers run on the connection's
// read goroutine and must not block.
type Handler func(payload json.RawMessage)

// Connection is the abstract realtime channel: start/stop lifecycle,
// event subscription, and client-to-server sends.
type Connection interface {
	// Start opens the channel and begins dispatching events until ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop closes the channel. Safe to call more than once.
	Stop() error

	// On registers the handler for an event name, replacing any previous one.
	On(event string, h Handler)

	// Off removes the handler for an event name.
	Off(event string)

	// Invoke sends an event and payload to the server.
	Invoke(ctx context.Context, event string, payload any) error

	// Send is Invoke without a caller-supplied context.
	Send(event string, payload any) error
}
