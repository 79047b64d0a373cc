package httpapi

import (
	"encoding/json"
	"net/http"

	checkoutapp "github.com/kuaizhixiang/storefront/internal/checkout/app"
	"github.com/kuaizhixiang/storefront/internal/checkout/domain"
)

type CheckoutHandler struct {
	svc *checkoutapp.Service
}

func NewCheckoutHandler(svc *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Quote prices the current cart without touching the provider, for the
// checkout summary screen.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	delivery := domain.DeliveryOption(r.URL.Query().Get("delivery"))

	quote, err := h.svc.Quote(r.Context(), delivery)
	if err != nil {
		status, code := httpStatusFromError(err)
		writeError(w, status, code, "failed to build quote")
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ShippingInfo   domain.ShippingInfo   `json:"shippingInfo"`
		DeliveryOption domain.DeliveryOption `json:"deliveryOption"`
		Locale         string                `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
		return
	}

	sess, err := h.svc.CreateSession(r.Context(), checkoutapp.CreateSessionInput{
		ShippingInfo:   body.ShippingInfo,
		DeliveryOption: body.DeliveryOption,
		Locale:         body.Locale,
	})
	if err != nil {
		status, code := httpStatusFromError(err)
		writeError(w, status, code, "failed to create checkout session")
		return
	}

	writeJSON(w, http.StatusOK, sess)
}
