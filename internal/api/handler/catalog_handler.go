package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// CatalogHandler serves the public product catalog.
type CatalogHandler struct {
	catalog ports.CatalogClient
}

func NewCatalogHandler(catalog ports.CatalogClient) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// List returns products filtered and sorted by query parameters.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        search     query     string  false  "Match against name and description"
// @Param        category   query     string  false  "Exact category name"
// @Param        sort       query     string  false  "name | price-low | price-high | rating | newest"
// @Param        max_price  query     number  false  "Price ceiling, 0 disables"
// @Success      200        {object}  productListResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.catalog.GetProducts(c.Request().Context(), ports.ProductParams{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	query := domain.FilterQuery{
		SortBy:   domain.SortKey(c.QueryParam("sort")),
		MaxPrice: domain.DefaultPriceCeiling,
	}
	if query.SortBy == "" {
		query.SortBy = domain.SortByName
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		ceiling, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "max_price must be a number")
		}
		query.MaxPrice = ceiling
	}

	filtered := query.Apply(products)
	return c.JSON(http.StatusOK, productListResponse{Products: filtered, Total: len(filtered)})
}

// Get returns a single product by id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	product, err := h.catalog.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}

	return c.JSON(http.StatusOK, product)
}

// Categories returns all categories with product counts.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /v1/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.GetCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}
