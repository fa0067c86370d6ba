// Package cli provides the initialization shared by the ledger commands:
// logging, configuration, store selection and the optional event publisher.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ledger/internal/amqp"
	"ledger/internal/backend"
	"ledger/internal/config"
	"ledger/internal/ledger"
	applog "ledger/internal/log"
)

// SetupLogger builds the process logger for the given LOG_LEVEL value,
// falling back to info, and installs it as the slog default.
func SetupLogger(level string, out io.Writer) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Component = applog.ComponentCLI
	if out != nil {
		cfg.Output = out
	}
	if lvl, err := applog.ParseLevel(level); err == nil {
		cfg.Level = lvl
	}

	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads the env file, then configuration from the
// environment, and validates it.
func LoadAndValidateConfig(envFile string) (*config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Session is an open ledger together with the resources behind it.
type Session struct {
	Ledger *ledger.Ledger
	Config *config.Config

	cleanups []func() error
}

// OpenLedger creates the configured store, connects the AMQP publisher when
// enabled and loads the ledger. A publisher that cannot connect is logged and
// skipped; the ledger works without it.
func OpenLedger(ctx context.Context, cfg *config.Config, logger *applog.Logger) (*Session, error) {
	backendConfig, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}

	result, err := backend.NewFactory(logger).CreateStore(ctx, backendConfig)
	if err != nil {
		return nil, err
	}
	session := &Session{Config: cfg, cleanups: []func() error{result.Cleanup}}

	opts := []ledger.Option{
		ledger.WithKey(cfg.StorageKey),
		ledger.WithLogger(logger),
	}

	if cfg.AMQPEnabled() {
		client, err := amqp.NewClient(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue,
			amqp.WithPublishTimeout(cfg.AMQPPublishTimeout),
			amqp.WithDialAttempts(cfg.AMQPDialAttempts),
			amqp.WithLogger(logger))
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without change events",
				applog.FieldError, err.Error())
		} else {
			logger.Debug("Initialized AMQP client",
				applog.FieldExchange, cfg.AMQPExchange,
				applog.FieldQueue, cfg.AMQPQueue)
			opts = append(opts, ledger.WithNotifier(client))
			session.cleanups = append(session.cleanups, client.Close)
		}
	}

	session.Ledger = ledger.Load(ctx, result.Store, opts...)
	return session, nil
}

// Close releases every resource in reverse order of acquisition.
func (s *Session) Close() error {
	var errs []error
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		if s.cleanups[i] == nil {
			continue
		}
		if err := s.cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.cleanups = nil
	if len(errs) > 0 {
		return fmt.Errorf("close session: %w", errors.Join(errs...))
	}
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
