// Package events defines the domain events emitted after task and wallet mutations.
package events

import (
	"context"
	"time"
)

const (
	TaskCreated        = "task.created"
	TaskUpdated        = "task.updated"
	TaskDeleted        = "task.deleted"
	WalletConnected    = "wallet.connected"
	WalletDisconnected = "wallet.disconnected"
)

// Event is the JSON envelope put on the exchange.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, interface{}) error { return nil }

// New wraps a payload into an envelope stamped with the current time.
func New(eventType string, payload interface{}) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Payload: payload}
}
