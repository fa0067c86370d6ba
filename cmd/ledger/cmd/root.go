// Package cmd provides CLI commands for the ledger.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
	"ledger/internal/config"
	applog "ledger/internal/log"
)

// rootOptions holds the global flags and the state prepared before a
// subcommand runs.
type rootOptions struct {
	envFile string
	debug   bool

	cfg    *config.Config
	logger *applog.Logger
	logOut io.Writer
}

// NewRootCmd builds the command tree. logOut receives log records; nil means stderr.
func NewRootCmd(logOut io.Writer) *cobra.Command {
	opts := &rootOptions{logOut: logOut}

	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Track income and expenses from the terminal",
		Long: `ledger records signed transactions, keeps them in a local store
and reports the running balance together with income and expense totals.

Positive amounts are income, negative amounts are expenses.

Example:
  ledger add "Salary" 50000
  ledger add "Coffee" -150
  ledger list
  ledger totals`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadAndValidateConfig(opts.envFile)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if opts.debug {
				level = "debug"
			}
			opts.cfg = cfg
			opts.logger = cli.SetupLogger(level, opts.logOut)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "env file to load (default is .env if present)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newTotalsCmd(opts))
	rootCmd.AddCommand(newClearCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))

	return rootCmd
}

// Execute runs the root command with signal-aware context.
// This is called by main.main().
func Execute() error {
	ctx, stop := cli.SignalContext(context.Background())
	defer stop()
	return NewRootCmd(nil).ExecuteContext(ctx)
}

// withSession opens the configured ledger, runs fn and closes it again.
func (o *rootOptions) withSession(cmd *cobra.Command, fn func(ctx context.Context, s *cli.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = applog.NewContext(ctx, o.logger)

	session, err := cli.OpenLedger(ctx, o.cfg, o.logger)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			o.logger.Warn("Failed to close ledger", applog.FieldError, err.Error())
		}
	}()

	if loadErr := session.Ledger.LoadError(); loadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: stored transactions could not be read, starting empty: %v\n", loadErr)
	}
	return fn(ctx, session)
}
