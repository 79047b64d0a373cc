package httpapi

import (
	"encoding/json"
	"net/http"

	supportapp "github.com/kuaizhixiang/storefront/internal/support/app"
)

type ContactHandler struct {
	svc *supportapp.Service
}

func NewContactHandler(svc *supportapp.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in supportapp.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
		return
	}

	if err := h.svc.SubmitInquiry(r.Context(), in); err != nil {
		status, code := httpStatusFromError(err)
		writeError(w, status, code, "failed to submit inquiry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
