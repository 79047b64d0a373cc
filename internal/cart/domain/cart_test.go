package domain

import (
	"testing"

	catalog "github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

func box(id string) catalog.Product {
	return catalog.Product{ID: id, Price: 150}
}

func TestMerge(t *testing.T) {
	t.Run("same product sums quantities", func(t *testing.T) {
		items := Merge(nil, box("1"), 1000)
		items = Merge(items, box("1"), 2000)

		if len(items) != 1 {
			t.Fatalf("expected 1 line, got %d", len(items))
		}
		if items[0].Quantity != 3000 {
			t.Fatalf("expected quantity 3000, got %d", items[0].Quantity)
		}
	})

	t.Run("distinct products append", func(t *testing.T) {
		items := Merge(nil, box("1"), 1000)
		items = Merge(items, box("2"), 1000)
		if len(items) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(items))
		}
	})
}

func TestRemove(t *testing.T) {
	items := Merge(nil, box("1"), 1000)
	items = Merge(items, box("2"), 1000)

	items = Remove(items, "1")
	if len(items) != 1 || items[0].Product.ID != "2" {
		t.Fatalf("expected only product 2, got %+v", items)
	}

	// absent id is a no-op
	items = Remove(items, "missing")
	if len(items) != 1 {
		t.Fatalf("remove of absent id changed the cart: %+v", items)
	}
}

func TestSetQuantity(t *testing.T) {
	t.Run("replaces quantity", func(t *testing.T) {
		items := Merge(nil, box("1"), 1000)
		items = SetQuantity(items, "1", 5000)
		if items[0].Quantity != 5000 {
			t.Fatalf("expected 5000, got %d", items[0].Quantity)
		}
	})

	t.Run("zero removes the line", func(t *testing.T) {
		items := Merge(nil, box("1"), 1000)
		items = SetQuantity(items, "1", 0)
		if len(items) != 0 {
			t.Fatalf("expected empty cart, got %+v", items)
		}
	})

	t.Run("negative removes the line", func(t *testing.T) {
		items := Merge(nil, box("1"), 1000)
		items = SetQuantity(items, "1", -5)
		if len(items) != 0 {
			t.Fatalf("expected empty cart, got %+v", items)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		items := Merge(nil, box("1"), 1000)
		items = SetQuantity(items, "missing", 9000)
		if len(items) != 1 || items[0].Quantity != 1000 {
			t.Fatalf("unexpected cart: %+v", items)
		}
	})
}

func TestTotalItems(t *testing.T) {
	items := Merge(nil, box("1"), 1000)
	items = Merge(items, box("2"), 1000)

	if got := TotalItems(items); got != 2000 {
		t.Fatalf("TotalItems = %d, want 2000", got)
	}
}
