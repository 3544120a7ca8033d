// Package memory provides seeded in-process repositories used in development
// mode and tests, mirroring the behavior of their MongoDB counterparts.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vista-store/storefront/internal/core/domain"
)

// ProductRepository serves the seeded development catalog.
type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewProductRepository() *ProductRepository {
	products := make([]domain.Product, len(seedProducts))
	copy(products, seedProducts)
	return &ProductRepository{products: products}
}

func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// CountByCategory computes counts from the catalog itself rather than
// trusting a separate fixture, so counts can never drift from the data.
func (r *ProductRepository) CountByCategory(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range r.products {
		counts[p.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]domain.Category, 0, len(names))
	for i, name := range names {
		categories = append(categories, domain.Category{
			ID:    int64(i + 1),
			Name:  name,
			Count: counts[name],
		})
	}
	return categories, nil
}

// UserRepository holds accounts in memory, seeded with the development logins.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User // by id
	nextID int64
}

func NewUserRepository() *UserRepository {
	r := &UserRepository{users: make(map[string]*domain.User), nextID: int64(len(seedAccounts) + 1)}
	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			panic("memory: seed password hash: " + err.Error())
		}
		user := acc.user
		user.PasswordHash = string(hash)
		now := time.Now().UTC()
		user.CreatedAt = now
		user.UpdatedAt = now
		r.users[user.ID] = &user
	}
	return r
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	created := *user
	created.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	r.users[created.ID] = &created

	clone := created
	return &clone, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	updated := *existing
	updated.Name = user.Name
	updated.Email = user.Email
	updated.Avatar = user.Avatar
	updated.UpdatedAt = user.UpdatedAt
	r.users[user.ID] = &updated

	clone := updated
	return &clone, nil
}

// OrderRepository holds orders in memory, newest first per user.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	seq    []string // insertion order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*domain.Order)}
}

func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	r.orders[order.ID] = &clone
	r.seq = append(r.seq, order.ID)
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *OrderRepository) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for i := len(r.seq) - 1; i >= 0; i-- {
		o := r.orders[r.seq[i]]
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (r *OrderRepository) AppendTracking(_ context.Context, orderID string, status domain.OrderStatus, at time.Time, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	o.Updates = append(o.Updates, domain.TrackingUpdate{Status: status, Date: at, Message: message})
	return nil
}

// DedupChecker is the in-process fallback for the Redis-backed one.
type DedupChecker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDedupChecker() *DedupChecker {
	return &DedupChecker{seen: make(map[string]struct{})}
}

func (d *DedupChecker) IsDuplicate(_ context.Context, orderID, status string, ts time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[dedupKey(orderID, status, ts)]
	return ok, nil
}

func (d *DedupChecker) Mark(_ context.Context, orderID, status string, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[dedupKey(orderID, status, ts)] = struct{}{}
	return nil
}

func dedupKey(orderID, status string, ts time.Time) string {
	return orderID + ":" + status + ":" + strconv.FormatInt(ts.Unix(), 10)
}
