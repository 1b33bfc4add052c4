package wizard

import (
	"context"
	"errors"
	"testing"
)

func TestBadgerStore_InMemory(t *testing.T) {
	store, err := OpenBadgerStore("")
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	w := Open(ctx, store, "s1")
	if err := w.SetRecipient(ctx, RecipientSibling); err != nil {
		t.Fatalf("set recipient: %v", err)
	}
	reopened := Open(ctx, store, "s1")
	if r := reopened.State().Recipient; r == nil || *r != RecipientSibling {
		t.Fatalf("expected recipient to survive reopen, got %v", r)
	}

	if err := reopened.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := store.Get(ctx, SessionKey("s1")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected snapshot to be erased, got %v", err)
	}
}
