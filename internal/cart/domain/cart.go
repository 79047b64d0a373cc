package domain

import (
	catalog "github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

// CartItem is one line of the cart: a product snapshot plus the ordered
// quantity. The snapshot travels with the cart so a persisted cart can
// be rendered without a catalog round-trip.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int64           `json:"quantity"`
}

// Merge adds quantity for the product, summing with an existing line
// instead of appending a duplicate. The result never holds two lines
// for the same product id.
func Merge(items []CartItem, p catalog.Product, quantity int64) []CartItem {
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, CartItem{Product: p, Quantity: quantity})
}

// Remove drops the line for the product id; absent ids are a no-op.
func Remove(items []CartItem, productID string) []CartItem {
	out := items[:0]
	for _, it := range items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}
	return out
}

// SetQuantity replaces the stored quantity for the product id. A
// non-positive quantity is an implicit removal; an absent id is a no-op.
func SetQuantity(items []CartItem, productID string, quantity int64) []CartItem {
	if quantity <= 0 {
		return Remove(items, productID)
	}
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// TotalItems is the sum of quantities, not the number of lines.
func TotalItems(items []CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Quantity
	}
	return total
}
