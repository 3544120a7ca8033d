// Package store holds the client-facing state containers: the cart, the
// catalog browse state, and the authenticated session. Each store owns its
// state exclusively, guards it with a mutex, and recomputes derived values
// after every mutation.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// CartSnapshotKey is the default durable storage namespace for cart lines.
const CartSnapshotKey = "vista:cart"

// cartSnapshot is the persisted shape. Only the line list is durable;
// derived totals are recomputed after restore, never trusted from storage.
type cartSnapshot struct {
	Items []domain.CartLine `json:"items"`
}

// Cart maintains the authoritative cart contents and derived totals, and
// persists the line list across restarts.
type Cart struct {
	mu        sync.Mutex
	storage   ports.SnapshotStore
	notifier  ports.Notifier
	log       zerolog.Logger
	key       string
	items     []domain.CartLine
	subtotal  float64
	itemCount int
}

// NewCart builds a cart persisting under the given snapshot key. Call Load
// before first use to restore any prior lines.
func NewCart(storage ports.SnapshotStore, notifier ports.Notifier, log zerolog.Logger, key string) *Cart {
	if key == "" {
		key = CartSnapshotKey
	}
	return &Cart{storage: storage, notifier: notifier, log: log, key: key}
}

// Load restores the persisted line list and recomputes the derived totals.
// Used once at application start.
func (c *Cart) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var snap cartSnapshot
	found, err := c.storage.Load(ctx, c.key, &snap)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if found {
		c.items = snap.Items
	}
	c.recompute()
	return nil
}

// AddItem merges quantity into an existing line for the product or appends a
// new line. Non-positive quantities are rejected at the boundary.
func (c *Cart) AddItem(ctx context.Context, product domain.Product, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	c.mu.Lock()
	merged := false
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, domain.CartLine{Product: product, Quantity: quantity})
	}
	c.recompute()
	c.persist(ctx)
	c.mu.Unlock()

	c.notifier.Success(fmt.Sprintf("%s added to cart", product.Name))
	return nil
}

// RemoveItem deletes the line for productID. A missing line is a no-op, not
// an error.
func (c *Cart) RemoveItem(ctx context.Context, productID int64) {
	c.mu.Lock()
	removed := false
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			removed = true
			break
		}
	}
	c.recompute()
	c.persist(ctx)
	c.mu.Unlock()

	if removed {
		c.notifier.Success("Item removed from cart")
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity (replace, not
// increment). A quantity of zero or below removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(ctx, productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.recompute()
	c.persist(ctx)
}

// Clear empties the line list and resets both derived totals.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.recompute()
	c.persist(ctx)
}

// Lines returns a copy of the current line list in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCount
}

// recompute refreshes the derived totals from the line list. Every mutator
// ends here; callers hold the mutex.
func (c *Cart) recompute() {
	c.subtotal, c.itemCount = domain.CartTotals(c.items)
}

// persist writes the line list snapshot. Persistence failure keeps the
// in-memory state and is only logged; callers hold the mutex.
func (c *Cart) persist(ctx context.Context) {
	if err := c.storage.Save(ctx, c.key, cartSnapshot{Items: c.items}); err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("failed to persist cart")
	}
}
