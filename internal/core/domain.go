package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type (
	// Transaction is a single signed ledger entry. A non-negative Amount is
	// income, a negative Amount is an expense.
	Transaction struct {
		ID     int64   `json:"id"`
		Text   string  `json:"text"`
		Amount float64 `json:"amount"`
	}

	// Totals is derived from the full transaction list on every call.
	Totals struct {
		Balance float64 `json:"balance"`
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
	}
)

const (
	FieldText   = "text"
	FieldAmount = "amount"
)

var (
	ErrEmptyText     = errors.New("empty description")
	ErrInvalidAmount = errors.New("non-numeric amount")
)

// ValidationError reports caller input that was rejected before any mutation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsIncome reports whether t counts towards income. Zero is income-like.
func (t Transaction) IsIncome() bool {
	return t.Amount >= 0
}

// Sign returns the display sign for t.
func (t Transaction) Sign() string {
	if t.IsIncome() {
		return "+"
	}
	return "-"
}

// ValidateInput checks a description/amount pair and returns the trimmed text.
func ValidateInput(text string, amount float64) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &ValidationError{Field: FieldText, Err: ErrEmptyText}
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", &ValidationError{Field: FieldAmount, Err: ErrInvalidAmount}
	}
	return trimmed, nil
}

// ComputeTotals sums txs from scratch.
func ComputeTotals(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		if tx.IsIncome() {
			t.Income += tx.Amount
		} else {
			t.Expense += -tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}
