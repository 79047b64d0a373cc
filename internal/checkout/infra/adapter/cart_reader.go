package adapter

import (
	"context"

	cartapp "github.com/kuaizhixiang/storefront/internal/cart/app"
	checkoutapp "github.com/kuaizhixiang/storefront/internal/checkout/app"
)

type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) Items(ctx context.Context) ([]checkoutapp.CartLine, error) {
	items := r.store.Items()

	lines := make([]checkoutapp.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, checkoutapp.CartLine{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}

func (r *CartStoreReader) Clear(ctx context.Context) error {
	r.store.Clear()
	return nil
}
