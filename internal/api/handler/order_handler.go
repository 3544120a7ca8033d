package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vista-store/storefront/internal/api/metrics"
	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
	"github.com/vista-store/storefront/internal/core/store"
)

// maxBatchSize caps how many order events can arrive in one batch request.
const maxBatchSize = 100

// EventDispatcher is the interface the handler uses to enqueue order events.
type EventDispatcher interface {
	Enqueue(event ports.OrderEventInput)
	EnqueueBatch(events []ports.OrderEventInput)
}

// OrderHandler handles checkout, order history and tracking.
type OrderHandler struct {
	checkout   *store.Checkout
	carts      *store.CartManager
	dispatcher EventDispatcher
}

func NewOrderHandler(checkout *store.Checkout, carts *store.CartManager, dispatcher EventDispatcher) *OrderHandler {
	return &OrderHandler{checkout: checkout, carts: carts, dispatcher: dispatcher}
}

// Create places an order from the user's cart and clears it on success.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  true  "Shipping address"
// @Success      201   {object}  domain.Order
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	cart, err := h.carts.Cart(ctx, userID)
	if err != nil {
		return err
	}

	order, err := h.checkout.PlaceOrder(ctx, cart, userID, domain.Address{
		Name:    req.Shipping.Name,
		Street:  req.Shipping.Street,
		City:    req.Shipping.City,
		ZipCode: req.Shipping.ZipCode,
		Phone:   req.Shipping.Phone,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// List returns the user's order history, newest first.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.checkout.Orders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

// Track returns the tracking timeline for one order. Customers can only
// track their own orders.
//
// @Summary      Track an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  ports.OrderTracking
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id}/tracking [get]
func (h *OrderHandler) Track(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tracking, err := h.checkout.Track(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tracking)
}

// ReceiveEvent ingests a single order status event. Admin only.
//
// @Summary      Ingest an order status event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      orderEventRequest  true  "Order event"
// @Success      202   {object}  acceptedResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/orders/events [post]
func (h *OrderHandler) ReceiveEvent(c echo.Context) error {
	var req orderEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveEventBatch ingests up to maxBatchSize order status events. Admin only.
//
// @Summary      Ingest a batch of order status events
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []orderEventRequest  true  "Order events"
// @Success      202   {object}  acceptedResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/orders/events/batch [post]
func (h *OrderHandler) ReceiveEventBatch(c echo.Context) error {
	var reqs []orderEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty batch")
	}
	if len(reqs) > maxBatchSize {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("batch size %d exceeds limit %d", len(reqs), maxBatchSize))
	}

	events := make([]ports.OrderEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event %d: %s", i, err.Error()))
		}
		events = append(events, toEventInput(req))
	}

	h.dispatcher.EnqueueBatch(events)
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "batch accepted", Count: len(events)})
}

func toEventInput(req orderEventRequest) ports.OrderEventInput {
	return ports.OrderEventInput{
		OrderID:   req.OrderID,
		Status:    req.Status,
		Timestamp: req.Timestamp,
		Message:   req.Message,
	}
}
