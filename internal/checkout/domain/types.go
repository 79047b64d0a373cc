package domain

import "time"

type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
)

// ShippingInfo is what the customer fills in at checkout; it is relayed
// to the payment provider as metadata and never stored here.
type ShippingInfo struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Postcode   string `json:"postcode"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Building   string `json:"building,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type QuoteLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

// Quote is the priced cart at a moment in time: the exact numbers shown
// to the customer and handed to the payment provider.
type Quote struct {
	Lines    []QuoteLine `json:"lines"`
	Subtotal int64       `json:"subtotal"`
	Shipping int64       `json:"shipping"`
	Total    int64       `json:"total"`
}

// Order is the in-memory summary built when a checkout session is
// created. It is returned to the client and forgotten; the provider
// owns the order of record.
type Order struct {
	ID             string         `json:"id"`
	Quote          Quote          `json:"quote"`
	ShippingInfo   ShippingInfo   `json:"shippingInfo"`
	DeliveryOption DeliveryOption `json:"deliveryOption"`
	CreatedAt      time.Time      `json:"createdAt"`
}
