// Package staticfile serves the catalog from a YAML file compiled into
// the binary. The repo shape matches what a database-backed catalog
// would implement, so swapping the source later only touches this
// package.
package staticfile

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kuaizhixiang/storefront/internal/catalog/app"
	"github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

//go:embed products.yaml
var productsYAML []byte

type ProductRepo struct {
	products []domain.Product
	byID     map[string]int
	bySlug   map[string]int
}

// NewProductRepo parses the embedded catalog once. Malformed catalog
// data is a build problem, so the error is returned rather than papered
// over.
func NewProductRepo() (*ProductRepo, error) {
	var doc struct {
		Products []domain.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(productsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	r := &ProductRepo{
		products: doc.Products,
		byID:     make(map[string]int, len(doc.Products)),
		bySlug:   make(map[string]int, len(doc.Products)),
	}
	for i, p := range doc.Products {
		if p.ID == "" || p.Slug == "" {
			return nil, fmt.Errorf("catalog entry %d missing id or slug", i)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		r.byID[p.ID] = i
		r.bySlug[p.Slug] = i
	}
	return r, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.products, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[i], nil
}

func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[i], nil
}
