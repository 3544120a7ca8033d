package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderInTransit  OrderStatus = "in_transit"
	OrderDelivered  OrderStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed},
	OrderConfirmed:  {OrderProcessing},
	OrderProcessing: {OrderShipped},
	OrderShipped:    {OrderInTransit},
	OrderInTransit:  {OrderDelivered},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrOrderNotFound = errors.New("order not found")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Address is the shipping destination collected at checkout.
type Address struct {
	Name    string `json:"name" bson:"name"`
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// TrackingUpdate records a single status change on an order's timeline.
type TrackingUpdate struct {
	Status  OrderStatus `json:"status" bson:"status"`
	Date    time.Time   `json:"date" bson:"date"`
	Message string      `json:"message,omitempty" bson:"message,omitempty"`
}

// Order is a confirmed purchase: a snapshot of the cart lines at checkout
// time plus shipping details and a status timeline.
type Order struct {
	ID        string           `json:"id" bson:"_id"`
	UserID    string           `json:"user_id" bson:"user_id"`
	Items     []CartLine       `json:"items" bson:"items"`
	Subtotal  float64          `json:"subtotal" bson:"subtotal"`
	Shipping  Address          `json:"shipping" bson:"shipping"`
	Status    OrderStatus      `json:"status" bson:"status"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	Updates   []TrackingUpdate `json:"updates" bson:"updates"`
}
