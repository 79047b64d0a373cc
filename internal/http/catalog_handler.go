package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/kuaizhixiang/storefront/internal/catalog/app"
	"github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

type CatalogHandler struct {
	svc *catalogapp.Service
}

func NewCatalogHandler(svc *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListProducts handles /api/products with optional ?size=, ?usage=,
// ?hot=1 and ?q=&locale= filters. Filters are mutually exclusive;
// precedence follows the order above.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		products []domain.Product
		err      error
	)
	switch {
	case q.Get("size") != "":
		size, convErr := strconv.Atoi(q.Get("size"))
		if convErr != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "size must be an integer")
			return
		}
		products, err = h.svc.ListBySize(ctx, size)
	case q.Get("usage") != "":
		products, err = h.svc.ListByUsage(ctx, domain.UsageCategory(q.Get("usage")))
	case q.Get("hot") != "":
		products, err = h.svc.ListHot(ctx)
	case q.Get("q") != "":
		products, err = h.svc.Search(ctx, q.Get("q"), q.Get("locale"))
	default:
		products, err = h.svc.ListProducts(ctx)
	}
	if err != nil {
		status, code := httpStatusFromError(err)
		writeError(w, status, code, "failed to list products")
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, err := h.svc.GetProductBySlug(r.Context(), slug)
	if err != nil {
		status, code := httpStatusFromError(err)
		writeError(w, status, code, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
