// Package payment talks to the hosted checkout provider. The provider
// is an opaque collaborator: it takes the priced cart and answers with
// a redirect URL where the customer completes payment.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kuaizhixiang/storefront/internal/checkout/app"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req app.SessionRequest) (app.SessionResponse, error) {
	if c.baseURL == "" {
		return app.SessionResponse{}, fmt.Errorf("checkout provider baseURL is empty")
	}

	url := c.baseURL + "/v1/checkout/sessions"

	b, err := json.Marshal(req)
	if err != nil {
		return app.SessionResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return app.SessionResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return app.SessionResponse{}, err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return app.SessionResponse{}, fmt.Errorf("checkout session failed status=%d body=%s",
			res.StatusCode, strings.TrimSpace(string(body)))
	}

	var out app.SessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return app.SessionResponse{}, fmt.Errorf("decode checkout session response: %w", err)
	}
	if out.RedirectURL == "" {
		return app.SessionResponse{}, fmt.Errorf("checkout provider returned no redirect url")
	}
	return out, nil
}
