package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
)

// Catalog holds the fetched product and category lists, the current-product
// slot, and the transient filter/sort state. Fetches go through the catalog
// service; a failed fetch leaves prior state untouched.
type Catalog struct {
	mu         sync.Mutex
	client     ports.CatalogClient
	notifier   ports.Notifier
	log        zerolog.Logger
	products   []domain.Product
	categories []domain.Category
	current    *domain.Product
	query      domain.FilterQuery
	loading    bool

	// Request sequencing for the current-product slot: responses older than
	// the last applied sequence are discarded, so a stale in-flight fetch can
	// never overwrite a newer result.
	issuedSeq  uint64
	appliedSeq uint64
}

func NewCatalog(client ports.CatalogClient, notifier ports.Notifier, log zerolog.Logger) *Catalog {
	return &Catalog{
		client:   client,
		notifier: notifier,
		log:      log,
		query: domain.FilterQuery{
			SortBy:   domain.SortByName,
			MaxPrice: domain.DefaultPriceCeiling,
		},
	}
}

// FetchProducts replaces the stored product list from the catalog service.
// On failure the prior list is kept and the error is surfaced.
func (s *Catalog) FetchProducts(ctx context.Context, params ports.ProductParams) error {
	s.setLoading(true)
	defer s.setLoading(false)

	products, err := s.client.GetProducts(ctx, params)
	if err != nil {
		s.log.Error().Err(err).Msg("product fetch failed")
		s.notifier.Error("Failed to fetch products")
		return err
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

// FetchProductByID resolves the current-product slot. An unknown id resolves
// the slot to nil without error. Overlapping calls are sequenced: only the
// newest issued request may update the slot.
func (s *Catalog) FetchProductByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.issuedSeq++
	seq := s.issuedSeq
	s.loading = true
	s.mu.Unlock()
	defer s.setLoading(false)

	product, err := s.client.GetProductByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("product_id", id).Msg("product detail fetch failed")
		s.notifier.Error("Failed to fetch product details")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.appliedSeq {
		s.log.Debug().Int64("product_id", id).Uint64("seq", seq).Msg("stale product response discarded")
		return nil
	}
	s.current = product
	s.appliedSeq = seq
	return nil
}

// FetchCategories replaces the stored category list.
func (s *Catalog) FetchCategories(ctx context.Context) error {
	categories, err := s.client.GetCategories(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("category fetch failed")
		s.notifier.Error("Failed to fetch categories")
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// --- Filter state setters: pure state updates, no side effects ---

func (s *Catalog) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Search = query
}

func (s *Catalog) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Category = category
}

func (s *Catalog) SetSortBy(key domain.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SortBy = key
}

func (s *Catalog) SetPriceCeiling(max float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.MaxPrice = max
}

// FilteredProducts computes the visible product list on demand from the full
// list and the current filter/sort state. The result is recomputed on each
// call, never cached, and the stored list is never mutated.
func (s *Catalog) FilteredProducts() []domain.Product {
	s.mu.Lock()
	products := s.products
	query := s.query
	s.mu.Unlock()

	return query.Apply(products)
}

// Products returns a copy of the full fetched product list.
func (s *Catalog) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Catalog) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CurrentProduct returns the detail slot, nil when empty or not found.
func (s *Catalog) CurrentProduct() *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

func (s *Catalog) Query() domain.FilterQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Catalog) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Catalog) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
