package ports

import (
	"context"

	"github.com/vista-store/storefront/internal/core/domain"
)

// CreateOrderInput is the checkout payload handed to the order service.
// The subtotal is recomputed from the items server-side and never trusted.
type CreateOrderInput struct {
	UserID   string
	Items    []domain.CartLine
	Shipping domain.Address
}

// OrderTracking is the status timeline for a single order.
type OrderTracking struct {
	OrderID string                  `json:"order_id"`
	Status  domain.OrderStatus      `json:"status"`
	Updates []domain.TrackingUpdate `json:"updates"`
}

// OrderClient is the contract with the order service. TrackOrder enforces
// ownership: customers may only track their own orders, admins see all.
type OrderClient interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrders(ctx context.Context, userID string) ([]domain.Order, error)
	TrackOrder(ctx context.Context, orderID, userID, role string) (*OrderTracking, error)
}
