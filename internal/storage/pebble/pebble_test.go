package pebble

import (
	"context"
	"errors"
	"testing"

	"ledger/internal/storage"
)

func TestPebbleStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir, WithCache(1<<20), WithMemTableSize(1<<20), WithBytesPerSync(1<<16))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := s.Get(ctx, "ledger"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "ledger", []byte(`[{"id":1,"text":"a","amount":2}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "ledger")
	if err != nil || string(got) != `[{"id":1,"text":"a","amount":2}]` {
		t.Fatalf("unexpected value %q (err=%v)", got, err)
	}
}
