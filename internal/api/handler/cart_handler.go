package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vista-store/storefront/internal/api/metrics"
	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
	"github.com/vista-store/storefront/internal/core/store"
)

// CartHandler exposes the per-user shopping cart.
type CartHandler struct {
	carts   *store.CartManager
	catalog ports.CatalogClient
}

func NewCartHandler(carts *store.CartManager, catalog ports.CatalogClient) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

type cartResponse struct {
	Items     []domain.CartLine `json:"items"`
	Subtotal  float64           `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

func cartView(cart *store.Cart) cartResponse {
	return cartResponse{
		Items:     cart.Lines(),
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
}

// Get returns the current cart contents and derived totals.
//
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.carts.Cart(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartView(cart))
}

// AddItem adds a product to the cart, merging into an existing line.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Product and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	product, err := h.catalog.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}

	cart, err := h.carts.Cart(ctx, userID)
	if err != nil {
		return err
	}
	if err := cart.AddItem(ctx, *product, req.Quantity); err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, cartView(cart))
}

// UpdateQuantity replaces a line's quantity. Zero or negative removes the line.
//
// @Summary      Update a cart line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      int                    true  "Product id"
// @Param        body        body      updateQuantityRequest  true  "New quantity"
// @Success      200         {object}  cartResponse
// @Failure      400         {object}  errorResponse
// @Router       /v1/cart/items/{product_id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id must be an integer")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	cart, err := h.carts.Cart(ctx, userID)
	if err != nil {
		return err
	}
	cart.UpdateQuantity(ctx, productID, req.Quantity)

	metrics.CartOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, cartView(cart))
}

// RemoveItem drops a line from the cart. Removing an absent product is a no-op.
//
// @Summary      Remove an item from the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      int  true  "Product id"
// @Success      200         {object}  cartResponse
// @Failure      400         {object}  errorResponse
// @Router       /v1/cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id must be an integer")
	}

	ctx := c.Request().Context()
	cart, err := h.carts.Cart(ctx, userID)
	if err != nil {
		return err
	}
	cart.RemoveItem(ctx, productID)

	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, cartView(cart))
}

// Clear empties the cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	cart, err := h.carts.Cart(ctx, userID)
	if err != nil {
		return err
	}
	cart.Clear(ctx)

	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	return c.JSON(http.StatusOK, cartView(cart))
}
