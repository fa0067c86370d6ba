// Package storage defines the key-value persistence contract used by the
// ledger and hosts the SQLite implementation of it.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is a durable string-keyed byte store.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key. It returns only once the
	// write is durable.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
