package cmd

import (
	"fmt"
	"io"

	"ledger/internal/core"
)

// signedAmount renders a row amount as +₹1,234.00 or -₹150.00.
func signedAmount(currency string, tx core.Transaction) string {
	return tx.Sign() + currency + core.FormatAmount(tx.Amount)
}

// balanceAmount keeps the sign after the symbol, as in ₹-150.00.
func balanceAmount(currency string, n float64) string {
	sign := ""
	if n < 0 {
		sign = "-"
	}
	return currency + sign + core.FormatAmount(n)
}

func printTransaction(w io.Writer, currency string, tx core.Transaction) {
	fmt.Fprintf(w, "%-16d %-32s %14s\n", tx.ID, tx.Text, signedAmount(currency, tx))
}

func printTotals(w io.Writer, currency string, totals core.Totals) {
	fmt.Fprintf(w, "Balance: %s\n", balanceAmount(currency, totals.Balance))
	fmt.Fprintf(w, "Income:  +%s%s\n", currency, core.FormatAmount(totals.Income))
	fmt.Fprintf(w, "Expense: -%s%s\n", currency, core.FormatAmount(totals.Expense))
}
