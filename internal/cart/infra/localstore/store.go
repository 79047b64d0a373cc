// Package localstore persists the cart as a JSON file next to the
// process, the server-side analog of the browser's localStorage entry.
// Writes replace the whole file; concurrent sessions are last-write-wins
// with no conflict detection.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kuaizhixiang/storefront/internal/cart/domain"
)

// StorageKey matches the storefront's client-side storage entry name.
const StorageKey = "cart-storage"

type Snapshots struct {
	path string
}

// New stores the snapshot at dir/<StorageKey>.json. If path points at a
// file instead of a directory, it is used verbatim.
func New(path string) *Snapshots {
	if ext := filepath.Ext(path); ext == "" {
		path = filepath.Join(path, StorageKey+".json")
	}
	return &Snapshots{path: path}
}

type snapshot struct {
	Items []domain.CartItem `json:"items"`
}

// Load reads the persisted cart. A missing file is an empty cart, not
// an error.
func (s *Snapshots) Load() ([]domain.CartItem, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return snap.Items, nil
}

func (s *Snapshots) Save(items []domain.CartItem) error {
	b, err := json.Marshal(snapshot{Items: items})
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	// write-then-rename so a crash mid-write can't corrupt the snapshot
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace cart snapshot: %w", err)
	}
	return nil
}
