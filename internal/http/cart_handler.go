package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	cartapp "github.com/kuaizhixiang/storefront/internal/cart/app"
	catalogapp "github.com/kuaizhixiang/storefront/internal/catalog/app"
	"github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

type CartHandler struct {
	store   *cartapp.Store
	catalog *catalogapp.Service
}

func NewCartHandler(store *cartapp.Store, catalog *catalogapp.Service) *CartHandler {
	return &CartHandler{store: store, catalog: catalog}
}

type cartLineView struct {
	Product   domain.Product `json:"product"`
	Quantity  int64          `json:"quantity"`
	UnitPrice int64          `json:"unitPrice"`
	Price     int64          `json:"price"`
}

type cartView struct {
	Items      []cartLineView `json:"items"`
	TotalItems int64          `json:"totalItems"`
	Subtotal   int64          `json:"subtotal"`
}

func (h *CartHandler) view() cartView {
	items := h.store.Items()
	lines := make([]cartLineView, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLineView{
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: h.store.ItemUnitPrice(it),
			Price:     h.store.ItemPrice(it),
		})
	}
	return cartView{
		Items:      lines,
		TotalItems: h.store.TotalItems(),
		Subtotal:   h.store.Subtotal(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

// AddItem resolves the product, normalizes the requested quantity to
// the lot/bounds policy and merges it into the cart. An omitted
// quantity means one lot.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int64  `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), body.ProductID)
	if err != nil {
		status, code := httpStatusFromError(err)
		writeError(w, status, code, "unknown product")
		return
	}

	qty := body.Quantity
	if qty <= 0 {
		qty = domain.LotSize
	}
	h.store.AddItem(p, domain.NormalizeQuantity(p, qty))

	writeJSON(w, http.StatusOK, h.view())
}

// UpdateQuantity replaces a line's quantity. Zero or negative removes
// the line, mirroring the store's contract; positive values are
// normalized first.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var body struct {
		Quantity int64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
		return
	}

	qty := body.Quantity
	if qty > 0 {
		if p, err := h.catalog.GetProduct(r.Context(), productID); err == nil {
			qty = domain.NormalizeQuantity(p, qty)
		}
	}
	h.store.UpdateQuantity(productID, qty)

	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveItem(chi.URLParam(r, "productId"))
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	writeJSON(w, http.StatusOK, h.view())
}
