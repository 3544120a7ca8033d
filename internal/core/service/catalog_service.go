package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// CatalogService implements ports.CatalogClient over a product repository.
type CatalogService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

func (s *CatalogService) GetProducts(ctx context.Context, params ports.ProductParams) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if params.Category == "" && params.Search == "" {
		return products, nil
	}

	search := strings.ToLower(params.Search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetProductByID resolves an unknown id to (nil, nil): the empty slot is a
// valid response the caller branches on, not a hard error.
func (s *CatalogService) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.products.CountByCategory(ctx)
}
