package app

import (
	"log/slog"
	"sync"

	"github.com/kuaizhixiang/storefront/internal/cart/domain"
	catalog "github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

// Store owns the session's cart: an ordered sequence of line items plus
// derived aggregates. Aggregates are recomputed from current tier data
// on every read, never cached, so the subtotal can't drift from the
// pricing rules. The mutex is for the HTTP server's sake; the modeled
// client session is single-threaded.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem

	snapshots Snapshotter
	log       *slog.Logger
}

// NewStore rehydrates the cart from the snapshot port. A missing or
// unreadable snapshot starts an empty cart; that is a fresh session,
// not an error.
func NewStore(snapshots Snapshotter, log *slog.Logger) *Store {
	s := &Store{
		snapshots: snapshots,
		log:       log,
	}

	items, err := snapshots.Load()
	if err != nil {
		log.Warn("cart snapshot unreadable, starting empty", slog.Any("err", err))
		return s
	}
	s.items = items
	return s
}

// AddItem merges the quantity into an existing line for the product or
// appends a new one. Quantity defaults to 1 when non-positive; callers
// that take user input normalize to lot multiples before calling.
func (s *Store) AddItem(p catalog.Product, quantity int64) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = domain.Merge(s.items, p, quantity)
	s.persist()
}

func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = domain.Remove(s.items, productID)
	s.persist()
}

func (s *Store) UpdateQuantity(productID string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = domain.SetQuantity(s.items, productID, quantity)
	s.persist()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities across lines, not the line count.
func (s *Store) TotalItems() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.TotalItems(s.items)
}

// Subtotal sums each line's tier-priced total.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, it := range s.items {
		total += catalog.TotalPrice(it.Product, it.Quantity)
	}
	return total
}

func (s *Store) ItemPrice(it domain.CartItem) int64 {
	return catalog.TotalPrice(it.Product, it.Quantity)
}

func (s *Store) ItemUnitPrice(it domain.CartItem) int64 {
	return catalog.UnitPrice(it.Product, it.Quantity)
}

// persist writes the snapshot under the store's lock so snapshots can't
// interleave. Failures are logged and swallowed: the in-memory cart
// stays authoritative for the session.
func (s *Store) persist() {
	if err := s.snapshots.Save(s.items); err != nil {
		s.log.Error("cart snapshot write failed", slog.Any("err", err))
	}
}
