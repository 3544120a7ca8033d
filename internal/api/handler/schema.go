package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updateProfileRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar string `json:"avatar,omitempty"`
}

// --- Cart ---

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"required,gt=0"`
}

type updateQuantityRequest struct {
	// Zero or negative removes the line.
	Quantity int `json:"quantity"`
}

// --- Checkout / orders ---

type shippingAddressRequest struct {
	Name    string `json:"name"     validate:"required"`
	Street  string `json:"street"   validate:"required"`
	City    string `json:"city"     validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Phone   string `json:"phone"`
}

type checkoutRequest struct {
	Shipping shippingAddressRequest `json:"shipping" validate:"required"`
}

type orderEventRequest struct {
	OrderID   string    `json:"order_id"  validate:"required"`
	Status    string    `json:"status"    validate:"required,oneof=confirmed processing shipped in_transit delivered"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Message   string    `json:"message"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
