package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestRepository(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")
	repo, err := NewSQLiteRepository(path, nil)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestSQLiteRepositoryGetMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Get(context.Background(), "absent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteRepositorySetOverwrites(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "k", []byte(`[1]`)); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := repo.Set(ctx, "k", []byte(`[1,2]`)); err != nil {
		t.Fatalf("second set: %v", err)
	}

	got, err := repo.Get(ctx, "k")
	if err != nil || string(got) != `[1,2]` {
		t.Fatalf("unexpected value %q (err=%v)", got, err)
	}
}

func TestSQLiteRepositoryPersistsAcrossReopen(t *testing.T) {
	repo, path := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "k", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening re-runs migrations, which must be a no-op
	reopened, err := NewSQLiteRepository(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "k")
	if err != nil || string(got) != `[]` {
		t.Fatalf("unexpected value %q (err=%v)", got, err)
	}
}
