package ports

import (
	"context"
	"time"

	"github.com/vista-store/storefront/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ProductRepository defines the persistence interface for the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	CountByCategory(ctx context.Context) ([]domain.Category, error)
}

// OrderRepository defines the persistence interface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// AppendTracking atomically sets the order status and appends a timeline entry.
	AppendTracking(ctx context.Context, orderID string, status domain.OrderStatus, at time.Time, message string) error
}
