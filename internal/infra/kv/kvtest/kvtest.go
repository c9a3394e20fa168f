// Package kvtest holds the behaviour every history KV backend must share.
package kvtest

import (
	"context"
	"errors"
	"testing"

	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

// Exercise checks not-found mapping, overwrite, and idempotent delete.
func Exercise(t *testing.T, store domain.KV) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "history"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}
	if err := store.Put(ctx, "history", []byte(`[1]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "history", []byte(`[2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Get(ctx, "history")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[2]` {
		t.Fatalf("expected last write, got %s", got)
	}
	if err := store.Delete(ctx, "history"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "history"); err != nil {
		t.Fatalf("delete of absent key should succeed: %v", err)
	}
	if _, err := store.Get(ctx, "history"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
