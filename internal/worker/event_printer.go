// Package worker holds handlers for ledger events read back from the broker.
package worker

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"ledger/internal/amqp"
	"ledger/internal/core"
	"ledger/internal/ledger"
	applog "ledger/internal/log"
)

// EventPrinter writes one line per ledger event and remembers the most
// recent totals it has seen.
type EventPrinter struct {
	out      io.Writer
	currency string
	logger   *applog.Logger

	mu     sync.Mutex
	seen   int
	totals core.Totals
}

func NewEventPrinter(out io.Writer, currency string, logger *applog.Logger) *EventPrinter {
	if logger == nil {
		logger = applog.Discard()
	}
	return &EventPrinter{
		out:      out,
		currency: currency,
		logger:   logger.WithComponent(applog.ComponentAMQP),
	}
}

// Handle implements amqp.Handler.
func (p *EventPrinter) Handle(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	line, err := p.describe(msg)
	if err != nil {
		// Acked and skipped, never requeued
		p.logger.WarnContext(ctx, "Skipping ledger event", applog.FieldEventKind, msg.Kind, applog.FieldError, err.Error())
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ts := msg.Timestamp.Local().Format(time.DateTime)
	if _, err := fmt.Fprintf(p.out, "%s  %s  balance %s%s (%d transactions)\n",
		ts, line, p.balanceSign(msg.Totals.Balance), core.FormatAmount(msg.Totals.Balance), msg.Count); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	p.seen++
	p.totals = msg.Totals
	return nil
}

func (p *EventPrinter) describe(msg *amqp.LedgerEventMessage) (string, error) {
	switch ledger.EventKind(msg.Kind) {
	case ledger.EventAdded, ledger.EventRemoved:
		if msg.Transaction == nil {
			return "", fmt.Errorf("%s event without transaction", msg.Kind)
		}
		tx := *msg.Transaction
		verb := "added"
		if ledger.EventKind(msg.Kind) == ledger.EventRemoved {
			verb = "removed"
		}
		return fmt.Sprintf("%s #%d %s %s%s%s", verb, tx.ID, tx.Text, tx.Sign(), p.currency, core.FormatAmount(tx.Amount)), nil
	case ledger.EventCleared:
		return "cleared", nil
	default:
		return "", fmt.Errorf("unknown event kind %q", msg.Kind)
	}
}

func (p *EventPrinter) balanceSign(balance float64) string {
	if balance < 0 {
		return p.currency + "-"
	}
	return p.currency
}

// Seen returns how many events were printed.
func (p *EventPrinter) Seen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seen
}

// Totals returns the totals carried by the last printed event.
func (p *EventPrinter) Totals() core.Totals {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals
}
