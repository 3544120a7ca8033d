package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vista-store/storefront/internal/core/domain"
)

func TestProductRepository_SeededCatalog(t *testing.T) {
	repo := NewProductRepository()

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 11 {
		t.Errorf("expected 11 seeded products, got %d", len(products))
	}

	p, err := repo.FindByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.Name != "Memory Foam Pillows" {
		t.Errorf("unexpected product: %+v", p)
	}

	if _, err := repo.FindByID(context.Background(), 404); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_CountByCategoryMatchesData(t *testing.T) {
	repo := NewProductRepository()

	categories, err := repo.CountByCategory(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	got := make(map[string]int, len(categories))
	total := 0
	for _, c := range categories {
		got[c.Name] = c.Count
		total += c.Count
	}

	want := map[string]int{"Accessories": 2, "Cushions": 1, "Mattresses": 3, "Pillows": 5}
	for name, count := range want {
		if got[name] != count {
			t.Errorf("category %s: expected %d, got %d", name, count, got[name])
		}
	}
	if total != 11 {
		t.Errorf("category counts must cover the whole catalog, got %d", total)
	}
}

func TestUserRepository_SeededAccounts(t *testing.T) {
	repo := NewUserRepository()

	admin, err := repo.FindByEmail(context.Background(), "admin@vista.com")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", admin.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")) != nil {
		t.Errorf("seed password must verify against the stored hash")
	}

	user, err := repo.FindByEmail(context.Background(), "user@vista.com")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Errorf("expected customer role, got %q", user.Role)
	}
}

func TestUserRepository_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, &domain.User{Name: "New", Email: "new@vista.com", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Errorf("expected assigned id")
	}

	if _, err := repo.Create(ctx, &domain.User{Email: "new@vista.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}

	created.Avatar = "https://img.example/n.png"
	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Avatar != created.Avatar {
		t.Errorf("expected avatar persisted")
	}

	if _, err := repo.Update(ctx, &domain.User{ID: "404"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestOrderRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	older := &domain.Order{ID: "a", UserID: "7", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &domain.Order{ID: "b", UserID: "7", CreatedAt: time.Now()}
	foreign := &domain.Order{ID: "c", UserID: "8", CreatedAt: time.Now()}
	for _, o := range []*domain.Order{older, newer, foreign} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("create %s: %v", o.ID, err)
		}
	}

	orders, err := repo.ListByUser(ctx, "7")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != "b" || orders[1].ID != "a" {
		t.Errorf("expected newest first, got %s then %s", orders[0].ID, orders[1].ID)
	}
}

func TestOrderRepository_AppendTracking(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	order := &domain.Order{ID: "a", UserID: "7", Status: domain.OrderPending, CreatedAt: time.Now()}
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create: %v", err)
	}

	ts := time.Now()
	if err := repo.AppendTracking(ctx, "a", domain.OrderConfirmed, ts, "Payment received"); err != nil {
		t.Fatalf("append: %v", err)
	}

	stored, err := repo.FindByID(ctx, "a")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Status != domain.OrderConfirmed {
		t.Errorf("expected status advanced, got %s", stored.Status)
	}
	if len(stored.Updates) != 1 || stored.Updates[0].Message != "Payment received" {
		t.Errorf("expected tracking entry, got %v", stored.Updates)
	}

	if err := repo.AppendTracking(ctx, "ghost", domain.OrderConfirmed, ts, ""); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestDedupChecker(t *testing.T) {
	ctx := context.Background()
	dedup := NewDedupChecker()
	ts := time.Now()

	dup, err := dedup.IsDuplicate(ctx, "a", "confirmed", ts)
	if err != nil || dup {
		t.Fatalf("fresh key should not be a duplicate: %v %v", dup, err)
	}

	if err := dedup.Mark(ctx, "a", "confirmed", ts); err != nil {
		t.Fatalf("mark: %v", err)
	}

	dup, err = dedup.IsDuplicate(ctx, "a", "confirmed", ts)
	if err != nil || !dup {
		t.Errorf("marked key should be a duplicate: %v %v", dup, err)
	}

	// A different status for the same order is a distinct key.
	dup, _ = dedup.IsDuplicate(ctx, "a", "processing", ts)
	if dup {
		t.Errorf("different status must not collide")
	}
}
