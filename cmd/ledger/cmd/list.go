package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var oldestFirst bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				out := cmd.OutOrStdout()
				if s.Ledger.Len() == 0 {
					fmt.Fprintln(out, "No transactions")
					return nil
				}

				txs := s.Ledger.Newest()
				if oldestFirst {
					txs = s.Ledger.Transactions()
				}
				for _, tx := range txs {
					printTransaction(out, s.Config.Currency, tx)
				}
				return nil
			})
		},
	}

	listCmd.Flags().BoolVar(&oldestFirst, "oldest-first", false, "list in insertion order")
	return listCmd
}
