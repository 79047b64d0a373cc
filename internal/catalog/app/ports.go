package app

import (
	"context"

	"github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

// ProductRepo supplies the catalog. The storefront never writes to it;
// today it is a static file, in production it could be a database or an
// upstream API.
type ProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (domain.Product, error)
}
