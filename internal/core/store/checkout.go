package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// Checkout turns a cart into an order through the order service.
//
// Cart clearing and order placement are not a cross-store transaction; the
// chosen ordering is: the cart is cleared only after the order service
// confirms creation, so a failed placement leaves the cart intact.
type Checkout struct {
	orders   ports.OrderClient
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewCheckout(orders ports.OrderClient, notifier ports.Notifier, log zerolog.Logger) *Checkout {
	return &Checkout{orders: orders, notifier: notifier, log: log}
}

// PlaceOrder creates an order from the cart's current lines and clears the
// cart on confirmed success.
func (s *Checkout) PlaceOrder(ctx context.Context, cart *Cart, userID string, shipping domain.Address) (*domain.Order, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order, err := s.orders.CreateOrder(ctx, ports.CreateOrderInput{
		UserID:   userID,
		Items:    lines,
		Shipping: shipping,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("order placement failed")
		s.notifier.Error(errorMessage(err, "Failed to place order"))
		return nil, err
	}

	cart.Clear(ctx)
	s.notifier.Success("Order placed successfully!")
	s.log.Info().Str("order_id", order.ID).Str("user_id", userID).Msg("order placed")
	return order, nil
}

// Orders lists the user's past orders.
func (s *Checkout) Orders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.GetOrders(ctx, userID)
}

// Track returns the status timeline for an order.
func (s *Checkout) Track(ctx context.Context, orderID, userID, role string) (*ports.OrderTracking, error) {
	return s.orders.TrackOrder(ctx, orderID, userID, role)
}
