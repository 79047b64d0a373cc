package app

import (
	"github.com/kuaizhixiang/storefront/internal/cart/domain"
)

// Snapshotter is the cart's persistence port: read once at startup,
// write after every mutation. It is the only durable state in the
// system, the analog of the browser's local storage.
type Snapshotter interface {
	Load() ([]domain.CartItem, error)
	Save(items []domain.CartItem) error
}
