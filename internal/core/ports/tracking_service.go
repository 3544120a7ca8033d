package ports

import (
	"context"
	"time"
)

// OrderEventInput is a single status update received for an order, e.g. from
// a fulfilment system or the admin dashboard.
type OrderEventInput struct {
	OrderID   string
	Status    string
	Timestamp time.Time
	Message   string
}

// TrackingService validates and applies order status updates.
type TrackingService interface {
	Process(ctx context.Context, in OrderEventInput) error
}
