package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/ports"
)

// CartManager hands out one Cart per user for the multi-user HTTP surface.
// Each cart persists under its own namespaced snapshot key and is restored
// from durable storage on first access.
type CartManager struct {
	mu       sync.Mutex
	storage  ports.SnapshotStore
	notifier ports.Notifier
	log      zerolog.Logger
	carts    map[string]*Cart
}

func NewCartManager(storage ports.SnapshotStore, notifier ports.Notifier, log zerolog.Logger) *CartManager {
	return &CartManager{
		storage:  storage,
		notifier: notifier,
		log:      log,
		carts:    make(map[string]*Cart),
	}
}

// Cart returns the user's cart, loading it from storage on first access.
func (m *CartManager) Cart(ctx context.Context, userID string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cart, ok := m.carts[userID]; ok {
		return cart, nil
	}

	cart := NewCart(m.storage, m.notifier, m.log, CartSnapshotKey+":"+userID)
	if err := cart.Load(ctx); err != nil {
		return nil, err
	}
	m.carts[userID] = cart
	return cart, nil
}
