package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// OrderService implements ports.OrderClient over an order repository.
type OrderService struct {
	orders ports.OrderRepository
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

// CreateOrder persists a new pending order. The subtotal is recomputed from
// the line items, never trusted from the caller.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	subtotal, _ := domain.CartTotals(input.Items)
	now := time.Now().UTC()
	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Items:     input.Items,
		Subtotal:  subtotal,
		Shipping:  input.Shipping,
		Status:    domain.OrderPending,
		CreatedAt: now,
		Updates: []domain.TrackingUpdate{
			{Status: domain.OrderPending, Date: now, Message: "Order received"},
		},
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().Str("order_id", order.ID).Str("user_id", input.UserID).Float64("subtotal", subtotal).Msg("order created")
	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// TrackOrder returns the status timeline. Customers may only track their own
// orders; an order owned by someone else resolves to not-found.
func (s *OrderService) TrackOrder(ctx context.Context, orderID, userID, role string) (*ports.OrderTracking, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("track order: %w", err)
	}
	if role != domain.RoleAdmin && order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}

	return &ports.OrderTracking{
		OrderID: order.ID,
		Status:  order.Status,
		Updates: order.Updates,
	}, nil
}
