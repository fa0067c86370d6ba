package backend

import (
	"context"
	"fmt"

	applog "ledger/internal/log"
	"ledger/internal/storage"
	"ledger/internal/storage/file"
	"ledger/internal/storage/memory"
	"ledger/internal/storage/pebble"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case MemoryBackend:
		return f.createMemoryStore()
	case FileBackend:
		return f.createFileStore(config)
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	case PebbleBackend:
		return f.createPebbleStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createMemoryStore() (*BackendResult, error) {
	store := memory.New()

	f.logger.Info("Initialized memory backend, changes will not survive the process")

	return &BackendResult{
		Store:   store,
		Cleanup: store.Close,
	}, nil
}

func (f *DefaultFactory) createFileStore(config Config) (*BackendResult, error) {
	store, err := file.New(config.DataDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	f.logger.Debug("Initialized file backend", applog.FieldPath, store.Dir())

	return &BackendResult{
		Store:   store,
		Cleanup: store.Close,
	}, nil
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Debug("Initialized SQLite backend", applog.FieldPath, config.SQLiteDBPath)

	return &BackendResult{
		Store:   repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createPebbleStore(config Config) (*BackendResult, error) {
	store, err := pebble.Open(config.PebbleDir, pebble.WithCache(int64(config.PebbleCacheMB)<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pebble store: %w", err)
	}

	f.logger.Debug("Initialized pebble backend",
		applog.FieldPath, config.PebbleDir,
		"cache_mb", config.PebbleCacheMB)

	return &BackendResult{
		Store:   store,
		Cleanup: store.Close,
	}, nil
}
