package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

type stubCatalogClient struct {
	products   []domain.Product
	categories []domain.Category
	lastParams ports.ProductParams
}

func (s *stubCatalogClient) GetProducts(_ context.Context, params ports.ProductParams) ([]domain.Product, error) {
	s.lastParams = params
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *stubCatalogClient) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			clone := s.products[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *stubCatalogClient) GetCategories(context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func catalogStub() *stubCatalogClient {
	return &stubCatalogClient{
		products: []domain.Product{
			{ID: 1, Name: "Cloud Pillow", Category: "Pillows", Price: 49.99},
			{ID: 2, Name: "Velvet Cushion", Category: "Cushions", Price: 29.99},
			{ID: 3, Name: "Aurora Mattress", Category: "Mattresses", Price: 899},
		},
		categories: []domain.Category{{ID: 1, Name: "Pillows", Count: 1}},
	}
}

func listRequest(e *echo.Echo, query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/v1/products?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_List(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(catalogStub())

	c, rec := listRequest(e, url.Values{})
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("expected 3 products, got %d", resp.Total)
	}
	// Default sort is by name.
	if resp.Products[0].Name != "Aurora Mattress" {
		t.Fatalf("expected name ordering, got %q first", resp.Products[0].Name)
	}
}

func TestCatalogHandler_ListWithFilters(t *testing.T) {
	e := newEcho()
	stub := catalogStub()
	handler := NewCatalogHandler(stub)

	c, rec := listRequest(e, url.Values{
		"category":  {"Pillows"},
		"sort":      {"price-low"},
		"max_price": {"100"},
	})
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if stub.lastParams.Category != "Pillows" {
		t.Fatalf("category must be pushed down to the service, got %+v", stub.lastParams)
	}

	var resp struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != 1 {
		t.Fatalf("expected only the pillow under 100, got %v", resp.Products)
	}
}

func TestCatalogHandler_ListBadMaxPrice(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(catalogStub())

	c, _ := listRequest(e, url.Values{"max_price": {"cheap"}})
	err := handler.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCatalogHandler_Get(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(catalogStub())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var product domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if product.ID != 2 {
		t.Fatalf("expected product 2, got %d", product.ID)
	}
}

func TestCatalogHandler_GetUnknownID(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(catalogStub())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("404")

	// The service resolves unknown ids to nil; the handler turns that into
	// a not-found for the HTTP surface.
	if err := handler.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogHandler_Categories(t *testing.T) {
	e := newEcho()
	handler := NewCatalogHandler(catalogStub())

	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Categories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
