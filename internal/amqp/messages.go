package amqp

import (
	"encoding/json"
	"time"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

// LedgerEventMessage is the wire form of a ledger change. It carries the
// totals after the change so consumers never need to read the ledger.
type LedgerEventMessage struct {
	Kind        string            `json:"kind"`
	Transaction *core.Transaction `json:"transaction,omitempty"`
	Totals      core.Totals       `json:"totals"`
	Count       int               `json:"count"`
	Timestamp   time.Time         `json:"timestamp"`
}

// NewLedgerEventMessage creates a message from a change event
func NewLedgerEventMessage(event ledger.ChangeEvent) *LedgerEventMessage {
	return &LedgerEventMessage{
		Kind:        string(event.Kind),
		Transaction: event.Transaction,
		Totals:      event.Totals,
		Count:       event.Count,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerEventMessageFromJSON creates a message from JSON bytes
func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
