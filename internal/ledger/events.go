package ledger

import (
	"context"

	"ledger/internal/core"
)

type EventKind string

const (
	EventAdded   EventKind = "transaction.added"
	EventRemoved EventKind = "transaction.removed"
	EventCleared EventKind = "ledger.cleared"
)

// ChangeEvent carries the ledger state right after a successful mutation.
// Transaction is nil for EventCleared.
type ChangeEvent struct {
	Kind        EventKind
	Transaction *core.Transaction
	Totals      core.Totals
	Count       int
}

// Notifier receives change events. Errors are logged by the ledger and never
// fail the mutation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, event ChangeEvent) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, event ChangeEvent) error

func (f NotifierFunc) Notify(ctx context.Context, event ChangeEvent) error {
	return f(ctx, event)
}
