// Package ledger owns the ordered list of transactions, keeps it in sync with
// a key-value store and derives balance, income and expense totals from it.
//
// A Ledger is not safe for concurrent use. Every mutation runs to completion,
// including the storage write, before it returns.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// DefaultStorageKey is the key the transaction list is stored under.
const DefaultStorageKey = "expense_tracker_transactions_v1"

type Ledger struct {
	store    storage.KV
	key      string
	logger   *applog.Logger
	notifier Notifier

	txs     []core.Transaction
	ids     idSequence
	loadErr error
}

type Option func(*Ledger)

// WithKey overrides DefaultStorageKey.
func WithKey(key string) Option {
	return func(l *Ledger) {
		if key != "" {
			l.key = key
		}
	}
}

func WithLogger(logger *applog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithNotifier registers a receiver for change events.
func WithNotifier(n Notifier) Option {
	return func(l *Ledger) {
		l.notifier = n
	}
}

// Load builds a Ledger from the value stored under its key. A missing key,
// a read failure or data that does not decode as a transaction list all
// yield an empty ledger; the cause of the last two is logged and kept in
// LoadError.
func Load(ctx context.Context, store storage.KV, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		key:    DefaultStorageKey,
		logger: applog.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.WithComponent(applog.ComponentLedger)

	raw, err := store.Get(ctx, l.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		l.logger.DebugContext(ctx, "No stored ledger, starting empty", applog.FieldKey, l.key)
		return l
	case err != nil:
		l.loadErr = &PersistenceError{Op: applog.OpLoad, Key: l.key, Err: err}
		l.logger.WarnContext(ctx, "Failed to read stored ledger, starting empty",
			applog.NewFields().
				WithKey(l.key).
				WithOperation(applog.OpLoad).
				WithErrorType(applog.ErrorTypeDatabase).
				WithError(err).
				ToSlice()...)
		return l
	}

	txs, dropped, err := decode(raw)
	if err != nil {
		l.loadErr = &DeserializationError{Key: l.key, Bytes: len(raw), Err: err}
		l.logger.WarnContext(ctx, "Discarding malformed stored ledger",
			applog.NewFields().
				WithKey(l.key).
				WithOperation(applog.OpLoad).
				WithErrorType(applog.ErrorTypeDeserialization).
				WithError(err).
				With(applog.FieldBytes, len(raw)).
				ToSlice()...)
		return l
	}

	if dropped > 0 {
		l.logger.WarnContext(ctx, "Dropped stored transactions without a description",
			applog.FieldKey, l.key,
			applog.FieldOperation, applog.OpLoad,
			applog.FieldRemoved, dropped)
	}

	l.txs = txs
	for _, tx := range txs {
		l.ids.observe(tx.ID)
	}
	l.logger.DebugContext(ctx, "Ledger loaded", applog.FieldKey, l.key, applog.FieldCount, len(txs))
	return l
}

// decode parses the stored array. Elements that are null or have a blank
// text cannot have been written by Add and are dropped; dropped counts them.
func decode(raw []byte) (txs []core.Transaction, dropped int, err error) {
	var stored []*core.Transaction
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, 0, err
	}
	txs = make([]core.Transaction, 0, len(stored))
	for _, tx := range stored {
		if tx == nil || strings.TrimSpace(tx.Text) == "" {
			dropped++
			continue
		}
		txs = append(txs, *tx)
	}
	return txs, dropped, nil
}

// LoadError returns why Load fell back to an empty ledger, or nil.
func (l *Ledger) LoadError() error {
	return l.loadErr
}

// Key returns the storage key the ledger persists under.
func (l *Ledger) Key() string {
	return l.key
}

// Add validates the input, appends a new transaction and persists the list.
// Invalid input returns a *core.ValidationError and changes nothing.
func (l *Ledger) Add(ctx context.Context, text string, amount float64) (core.Transaction, error) {
	trimmed, err := core.ValidateInput(text, amount)
	if err != nil {
		l.logger.DebugContext(ctx, "Rejected transaction",
			applog.FieldOperation, applog.OpAdd,
			applog.FieldErrorType, applog.ErrorTypeValidation,
			applog.FieldError, err.Error())
		return core.Transaction{}, err
	}

	seq := l.ids
	id, err := seq.next()
	if err != nil {
		return core.Transaction{}, err
	}
	tx := core.Transaction{ID: id, Text: trimmed, Amount: amount}
	next := append(slices.Clone(l.txs), tx)
	if err := l.commit(ctx, applog.OpAdd, next); err != nil {
		return core.Transaction{}, err
	}
	l.ids = seq

	l.logger.InfoContext(ctx, "Transaction added",
		applog.NewFields().
			WithOperation(applog.OpAdd).
			WithTransaction(tx.ID, tx.Text, tx.Amount).
			WithLedgerState(len(l.txs), l.Totals().Balance).
			ToSlice()...)
	l.notify(ctx, EventAdded, &tx)
	return tx, nil
}

// Remove deletes every transaction with the given id and persists the list
// either way. Ids loaded from older data may repeat. It reports whether any
// transaction was removed.
func (l *Ledger) Remove(ctx context.Context, id int64) (bool, error) {
	matches := func(tx core.Transaction) bool { return tx.ID == id }

	var first core.Transaction
	if idx := slices.IndexFunc(l.txs, matches); idx >= 0 {
		first = l.txs[idx]
	}
	next := slices.DeleteFunc(slices.Clone(l.txs), matches)
	removedCount := len(l.txs) - len(next)

	if err := l.commit(ctx, applog.OpRemove, next); err != nil {
		return false, err
	}

	if removedCount == 0 {
		l.logger.DebugContext(ctx, "Transaction not found", applog.FieldTxID, id, applog.FieldRemoved, 0)
		return false, nil
	}

	// The event and log carry the first match
	l.logger.InfoContext(ctx, "Transaction removed",
		applog.NewFields().
			WithOperation(applog.OpRemove).
			WithTransaction(first.ID, first.Text, first.Amount).
			WithLedgerState(len(l.txs), l.Totals().Balance).
			With(applog.FieldRemoved, removedCount).
			ToSlice()...)
	l.notify(ctx, EventRemoved, &first)
	return true, nil
}

// Clear removes every transaction and persists the empty list.
// Confirmation is the caller's concern.
func (l *Ledger) Clear(ctx context.Context) error {
	if err := l.commit(ctx, applog.OpClear, nil); err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "Ledger cleared", applog.FieldOperation, applog.OpClear)
	l.notify(ctx, EventCleared, nil)
	return nil
}

// Totals recomputes balance, income and expense from the full list.
func (l *Ledger) Totals() core.Totals {
	return core.ComputeTotals(l.txs)
}

// Transactions returns a copy of the list, oldest first.
func (l *Ledger) Transactions() []core.Transaction {
	out := make([]core.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Newest returns a copy of the list, newest first.
func (l *Ledger) Newest() []core.Transaction {
	out := l.Transactions()
	slices.Reverse(out)
	return out
}

func (l *Ledger) Len() int {
	return len(l.txs)
}

// commit writes next to the store and only then makes it the in-memory
// list, so a failed write leaves the ledger on its last persisted state.
func (l *Ledger) commit(ctx context.Context, op string, next []core.Transaction) error {
	if next == nil {
		next = []core.Transaction{}
	}
	payload, err := json.Marshal(next)
	if err != nil {
		return &PersistenceError{Op: op, Key: l.key, Err: err}
	}
	if err := l.store.Set(ctx, l.key, payload); err != nil {
		fields := applog.NewFields().
			WithKey(l.key).
			WithOperation(op).
			WithErrorType(applog.ErrorTypeDatabase).
			WithError(err).
			With(applog.FieldRolledBack, true)
		l.logger.ErrorContext(ctx, "Failed to persist ledger", fields.ToSlice()...)
		return &PersistenceError{Op: op, Key: l.key, Err: err}
	}
	l.txs = next
	return nil
}

func (l *Ledger) notify(ctx context.Context, kind EventKind, tx *core.Transaction) {
	if l.notifier == nil {
		return
	}
	event := ChangeEvent{
		Kind:        kind,
		Transaction: tx,
		Totals:      l.Totals(),
		Count:       len(l.txs),
	}
	if err := l.notifier.Notify(ctx, event); err != nil {
		l.logger.WarnContext(ctx, "Failed to deliver change event",
			applog.FieldEventKind, string(kind),
			applog.FieldError, err.Error())
	}
}
