package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
	"ledger/internal/core"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <text> <amount>",
		Short: "Record a transaction",
		Long: `Record a transaction. Positive amounts are income, negative amounts
are expenses. Either a dot or a comma may be used as decimal separator.
Flags go before the description; everything after it is positional.

Example:
  ledger add "Salary" 50000
  ledger add "Coffee" -150
  ledger add --debug "Book" -12,50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseAmount(args[1])
			if err != nil {
				return invalidInput(&core.ValidationError{Field: core.FieldAmount, Err: err})
			}

			return opts.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				tx, err := s.Ledger.Add(ctx, args[0], amount)
				if err != nil {
					return invalidInput(err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Added #%d %s %s\n", tx.ID, tx.Text, signedAmount(s.Config.Currency, tx))
				printTotals(out, s.Config.Currency, s.Ledger.Totals())
				return nil
			})
		},
	}

	// Negative amounts must not be parsed as shorthand flags
	addCmd.Flags().SetInterspersed(false)
	return addCmd
}

// invalidInput turns validation failures into the message shown for bad
// input and passes other errors through.
func invalidInput(err error) error {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("please enter a valid description and amount: %w", err)
	}
	return err
}
