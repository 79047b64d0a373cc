package adapter

import (
	"context"

	catalogapp "github.com/kuaizhixiang/storefront/internal/catalog/app"
	catalogdomain "github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (catalogdomain.Product, error) {
	return r.svc.GetProduct(ctx, productID)
}
