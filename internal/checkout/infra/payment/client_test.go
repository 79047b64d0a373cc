package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuaizhixiang/storefront/internal/checkout/app"
)

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("posts priced lines, returns redirect", func(t *testing.T) {
		var got app.SessionRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(app.SessionResponse{
				SessionID:   "cs_123",
				RedirectURL: "https://pay.example.com/cs_123",
			})
		}))
		defer srv.Close()

		resp, err := NewClient(srv.URL).CreateCheckoutSession(context.Background(), app.SessionRequest{
			LineItems: []app.SessionLineItem{
				{Name: "Takkyubin 60 Standard Box", UnitPrice: 150, Quantity: 3000},
				{Name: "Shipping", UnitPrice: 500, Quantity: 1},
			},
			CustomerMail: "buyer@example.com",
			Locale:       "ja",
		})
		require.NoError(t, err)
		assert.Equal(t, "cs_123", resp.SessionID)
		assert.Equal(t, "https://pay.example.com/cs_123", resp.RedirectURL)
		assert.Len(t, got.LineItems, 2)
		assert.Equal(t, int64(150), got.LineItems[0].UnitPrice)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid line items", http.StatusBadRequest)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).CreateCheckoutSession(context.Background(), app.SessionRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=400")
	})

	t.Run("missing redirect url is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"sessionId":"cs_123"}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).CreateCheckoutSession(context.Background(), app.SessionRequest{})
		require.Error(t, err)
	})

	t.Run("empty base url is an error", func(t *testing.T) {
		_, err := NewClient("").CreateCheckoutSession(context.Background(), app.SessionRequest{})
		require.Error(t, err)
	})
}
