package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
)

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			return opts.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				removed, err := s.Ledger.Remove(ctx, id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if removed {
					fmt.Fprintf(out, "Removed #%d\n", id)
				} else {
					fmt.Fprintf(out, "No transaction #%d\n", id)
				}
				printTotals(out, s.Config.Currency, s.Ledger.Totals())
				return nil
			})
		},
	}
}
