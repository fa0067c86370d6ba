package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in    string
		level slog.Level
		ok    bool
	}{
		{"", slog.LevelInfo, true},
		{"debug", slog.LevelDebug, true},
		{" WARN ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.ok && (err != nil || got != tc.level) {
			t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.level, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Component: ComponentApp, Output: &buf})

	logger.WithComponent(ComponentLedger).Info("Transaction added", FieldTxID, int64(7))

	out := buf.String()
	if !strings.Contains(out, "component=ledger") {
		t.Fatalf("expected component field, got %q", out)
	}
	if !strings.Contains(out, "tx_id=7") {
		t.Fatalf("expected tx_id field, got %q", out)
	}
}

func TestFromContext(t *testing.T) {
	logger := Discard().WithComponent(ComponentCLI)
	ctx := NewContext(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Fatalf("expected stored logger")
	}
	if got := FromContext(context.Background()); got.Component() != "unknown" {
		t.Fatalf("expected fallback logger, got component %q", got.Component())
	}
}

func TestLogFields(t *testing.T) {
	fields := NewFields().
		With(FieldBackend, "sqlite").
		WithOperation(OpSave).
		WithError(nil).
		WithKey("k")
	if _, ok := fields[FieldError]; ok {
		t.Fatalf("nil error must not add a field")
	}
	if len(fields.ToSlice()) != 6 {
		t.Fatalf("expected 3 key/value pairs, got %v", fields.ToSlice())
	}
}
