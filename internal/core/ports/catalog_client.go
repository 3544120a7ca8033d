package ports

import (
	"context"

	"github.com/vista-store/storefront/internal/core/domain"
)

// ProductParams narrows a product list request server-side. All fields are
// optional; the zero value requests the full catalog.
type ProductParams struct {
	Category string
	Search   string
}

// CatalogClient is the contract with the catalog service.
//
// GetProductByID resolves an unknown id to (nil, nil): not-found is a valid
// empty state for the caller to branch on, not an error.
type CatalogClient interface {
	GetProducts(ctx context.Context, params ProductParams) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
}
