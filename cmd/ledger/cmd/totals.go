package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
)

func newTotalsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show balance, income and expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				printTotals(cmd.OutOrStdout(), s.Config.Currency, s.Ledger.Totals())
				return nil
			})
		},
	}
}
