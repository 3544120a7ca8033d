package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/infrastructure/notify"
	"github.com/vista-store/storefront/internal/infrastructure/storage"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// failingStore rejects every write, to verify mutations survive persistence
// failures.
type failingStore struct{}

func (failingStore) Save(context.Context, string, any) error         { return errors.New("storage down") }
func (failingStore) Load(context.Context, string, any) (bool, error) { return false, nil }
func (failingStore) Delete(context.Context, string) error            { return errors.New("storage down") }

func pillow() domain.Product {
	return domain.Product{ID: 1, Name: "Cloud Pillow", Price: 49.99, Category: "Pillows"}
}

func cushion() domain.Product {
	return domain.Product{ID: 2, Name: "Velvet Cushion", Price: 29.99, Category: "Cushions"}
}

func newTestCart() (*Cart, *notify.Recorder) {
	rec := notify.NewRecorder()
	return NewCart(storage.NewMemoryStore(), rec, zerolog.Nop(), ""), rec
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCart_AddItemMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart()

	if err := cart.AddItem(ctx, pillow(), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddItem(ctx, pillow(), 3); err != nil {
		t.Fatalf("add again: %v", err)
	}

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", lines[0].Quantity)
	}
	if cart.ItemCount() != 5 {
		t.Errorf("expected item count 5, got %d", cart.ItemCount())
	}
}

func TestCart_AddItemRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	cart, rec := newTestCart()

	for _, qty := range []int{0, -1} {
		if err := cart.AddItem(ctx, pillow(), qty); !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if len(cart.Lines()) != 0 {
		t.Errorf("cart should stay empty")
	}
	if len(rec.Successes) != 0 {
		t.Errorf("no notification expected, got %v", rec.Successes)
	}
}

func TestCart_AddItemNotifies(t *testing.T) {
	ctx := context.Background()
	cart, rec := newTestCart()

	if err := cart.AddItem(ctx, pillow(), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(rec.Successes) != 1 || rec.Successes[0] != "Cloud Pillow added to cart" {
		t.Errorf("unexpected notifications: %v", rec.Successes)
	}
}

func TestCart_RemoveMissingItemIsNoOp(t *testing.T) {
	ctx := context.Background()
	cart, rec := newTestCart()
	_ = cart.AddItem(ctx, pillow(), 1)
	rec.Successes = nil

	cart.RemoveItem(ctx, 999)

	if len(cart.Lines()) != 1 {
		t.Errorf("existing line should be untouched")
	}
	if len(rec.Successes) != 0 {
		t.Errorf("no notification for a no-op removal, got %v", rec.Successes)
	}
}

func TestCart_UpdateQuantityReplaces(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart()
	_ = cart.AddItem(ctx, pillow(), 2)

	cart.UpdateQuantity(ctx, 1, 7)

	if got := cart.Lines()[0].Quantity; got != 7 {
		t.Errorf("expected quantity replaced with 7, got %d", got)
	}
}

func TestCart_UpdateQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart()
	_ = cart.AddItem(ctx, pillow(), 2)
	_ = cart.AddItem(ctx, cushion(), 1)

	cart.UpdateQuantity(ctx, 1, 0)

	lines := cart.Lines()
	if len(lines) != 1 || lines[0].ID != 2 {
		t.Fatalf("expected only the cushion to remain, got %v", lines)
	}
	if cart.ItemCount() != 1 {
		t.Errorf("expected item count 1, got %d", cart.ItemCount())
	}
}

func TestCart_TotalsTrackMutations(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart()
	_ = cart.AddItem(ctx, pillow(), 2)
	_ = cart.AddItem(ctx, cushion(), 1)

	if want := 49.99*2 + 29.99; cart.Subtotal() != want {
		t.Errorf("expected subtotal %.2f, got %.2f", want, cart.Subtotal())
	}

	cart.Clear(ctx)
	if cart.Subtotal() != 0 || cart.ItemCount() != 0 {
		t.Errorf("expected zero totals after clear, got %.2f / %d", cart.Subtotal(), cart.ItemCount())
	}
}

func TestCart_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	rec := notify.NewRecorder()

	cart := NewCart(store, rec, zerolog.Nop(), "")
	_ = cart.AddItem(ctx, pillow(), 2)
	_ = cart.AddItem(ctx, cushion(), 1)

	restored := NewCart(store, rec, zerolog.Nop(), "")
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(restored.Lines()) != 2 {
		t.Fatalf("expected 2 restored lines, got %d", len(restored.Lines()))
	}
	// Derived totals are recomputed from the restored lines, never read
	// back from storage.
	if want := 49.99*2 + 29.99; restored.Subtotal() != want {
		t.Errorf("expected subtotal %.2f after restore, got %.2f", want, restored.Subtotal())
	}
	if restored.ItemCount() != 3 {
		t.Errorf("expected item count 3 after restore, got %d", restored.ItemCount())
	}
}

func TestCart_MutationSurvivesPersistFailure(t *testing.T) {
	ctx := context.Background()
	cart := NewCart(failingStore{}, notify.NewRecorder(), zerolog.Nop(), "")

	if err := cart.AddItem(ctx, pillow(), 1); err != nil {
		t.Fatalf("add should not fail on persistence error: %v", err)
	}
	if len(cart.Lines()) != 1 {
		t.Errorf("in-memory state should be kept when storage is down")
	}
}
