package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// DedupChecker abstracts the idempotency store for order status updates.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, orderID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, orderID, status string, ts time.Time) error
}

type trackingService struct {
	orders ports.OrderRepository
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewTrackingService returns a TrackingService that validates, deduplicates,
// and applies order status updates.
func NewTrackingService(orders ports.OrderRepository, dedup DedupChecker, log zerolog.Logger) ports.TrackingService {
	return &trackingService{orders: orders, dedup: dedup, log: log}
}

// Process applies a single status update to an order's timeline.
func (s *trackingService) Process(ctx context.Context, in ports.OrderEventInput) error {
	newStatus := domain.OrderStatus(in.Status)

	// Idempotency check: silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.OrderID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", in.OrderID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("order_id", in.OrderID).Str("status", in.Status).Msg("duplicate update skipped")
		return nil
	}

	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return fmt.Errorf("process update: %w", err)
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("process update: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, newStatus)
	}

	// Mark before writing so a retry after a partial failure stays idempotent.
	if markErr := s.dedup.Mark(ctx, in.OrderID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("order_id", in.OrderID).Msg("failed to set dedup key")
	}

	if err := s.orders.AppendTracking(ctx, in.OrderID, newStatus, in.Timestamp, in.Message); err != nil {
		return fmt.Errorf("process update: append tracking: %w", err)
	}

	s.log.Info().
		Str("order_id", in.OrderID).
		Str("status", in.Status).
		Msg("order update processed")

	return nil
}
