package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
)

func newClearCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every transaction",
		Long: `Remove every transaction. This cannot be undone.

Without --yes the command asks for confirmation on stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes && !confirm(cmd.InOrStdin(), out, "Clear ALL transactions? This cannot be undone. [y/N] ") {
				fmt.Fprintln(out, "Aborted")
				return nil
			}

			return opts.withSession(cmd, func(ctx context.Context, s *cli.Session) error {
				if err := s.Ledger.Clear(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Cleared")
				printTotals(out, s.Config.Currency, s.Ledger.Totals())
				return nil
			})
		},
	}

	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return clearCmd
}

// confirm prints prompt and reports whether the answer is y or yes.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
