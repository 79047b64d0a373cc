package staticfile

import (
	"context"
	"errors"
	"testing"

	"github.com/kuaizhixiang/storefront/internal/catalog/app"
	"github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

func TestEmbeddedCatalog(t *testing.T) {
	repo, err := NewProductRepo()
	if err != nil {
		t.Fatalf("NewProductRepo: %v", err)
	}
	ctx := context.Background()

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 8 {
		t.Fatalf("expected 8 products, got %d", len(products))
	}

	t.Run("lookup by id and slug agree", func(t *testing.T) {
		byID, err := repo.Get(ctx, "1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		bySlug, err := repo.GetBySlug(ctx, "takkyubin-60-standard")
		if err != nil {
			t.Fatalf("GetBySlug: %v", err)
		}
		if byID.ID != bySlug.ID {
			t.Fatalf("id/slug lookup mismatch: %q vs %q", byID.ID, bySlug.ID)
		}
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "999")
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("every product has a gap-free tier ladder", func(t *testing.T) {
		for _, p := range products {
			if len(p.PriceTiers) == 0 {
				t.Fatalf("product %s has no tiers", p.ID)
			}
			if p.PriceTiers[0].MinQuantity != p.MinOrderQuantity {
				t.Fatalf("product %s: first tier starts at %d, min order is %d",
					p.ID, p.PriceTiers[0].MinQuantity, p.MinOrderQuantity)
			}
			for i := 1; i < len(p.PriceTiers); i++ {
				prev, cur := p.PriceTiers[i-1], p.PriceTiers[i]
				if prev.MaxQuantity == 0 {
					t.Fatalf("product %s: tier %d is unbounded but not last", p.ID, i-1)
				}
				if cur.MinQuantity != prev.MaxQuantity+1 {
					t.Fatalf("product %s: gap between tiers %d and %d", p.ID, i-1, i)
				}
			}
			last := p.PriceTiers[len(p.PriceTiers)-1]
			if last.MaxQuantity != 0 {
				t.Fatalf("product %s: last tier must be unbounded", p.ID)
			}
		}
	})

	t.Run("tier pricing resolves from embedded data", func(t *testing.T) {
		p, err := repo.Get(ctx, "1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got := domain.UnitPrice(p, 10000); got != 140 {
			t.Fatalf("UnitPrice(10000) = %d, want 140", got)
		}
	})
}
