// Package pebble implements storage.KV on top of a Pebble LSM directory.
package pebble

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"ledger/internal/storage"
)

type Store struct {
	db   *pebble.DB
	opts *pebble.Options
}

type Option func(*Store)

// WithCache sets the block cache size in bytes.
func WithCache(size int64) Option {
	return func(s *Store) {
		s.opts.Cache = pebble.NewCache(size)
	}
}

func WithMemTableSize(size uint64) Option {
	return func(s *Store) {
		s.opts.MemTableSize = size
	}
}

func WithBytesPerSync(bytes int) Option {
	return func(s *Store) {
		s.opts.BytesPerSync = bytes
	}
}

// Open opens or creates the Pebble store at dir. The ledger holds a single
// small value, so the defaults are far below Pebble's own.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		opts: &pebble.Options{
			MemTableSize: 4 << 20,
			BytesPerSync: 1 << 20,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.opts.Cache == nil {
		s.opts.Cache = pebble.NewCache(8 << 20)
	}
	defer s.opts.Cache.Unref()

	db, err := pebble.Open(dir, s.opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble at %s: %w", dir, err)
	}
	s.db = db
	return s, nil
}

// Get implements storage.KV
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	d, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	defer closer.Close()

	data := make([]byte, len(d))
	copy(data, d)
	return data, nil
}

// Set implements storage.KV with a synced write.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if err := s.db.Set([]byte(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
