package app_test

import (
	"fmt"
	"log/slog"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/kuaizhixiang/storefront/internal/cart/app"
	"github.com/kuaizhixiang/storefront/internal/cart/domain"
	catalog "github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

type nopSnapshots struct{}

func (nopSnapshots) Load() ([]domain.CartItem, error)   { return nil, nil }
func (nopSnapshots) Save(items []domain.CartItem) error { return nil }

func TestStore_ConcurrentAddItemIncrement(t *testing.T) {
	store := app.NewStore(nopSnapshots{}, slog.Default())
	p := catalog.Product{ID: "1", Price: 150}

	const n = 100
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			store.AddItem(p, 1000)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(items))
	}
	if items[0].Quantity != n*1000 {
		t.Fatalf("expected quantity %d, got %d", n*1000, items[0].Quantity)
	}
}

func TestStore_ConcurrentMixedMutations(t *testing.T) {
	store := app.NewStore(nopSnapshots{}, slog.Default())

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("p%d", i%5)
		g.Go(func() error {
			store.AddItem(catalog.Product{ID: id, Price: 100}, 1000)
			store.TotalItems()
			store.Subtotal()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent mutations failed: %v", err)
	}

	if got := len(store.Items()); got != 5 {
		t.Fatalf("expected 5 distinct lines, got %d", got)
	}
	if got := store.TotalItems(); got != 50*1000 {
		t.Fatalf("TotalItems = %d, want %d", got, 50*1000)
	}
}
