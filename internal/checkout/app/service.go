package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	catalogdomain "github.com/kuaizhixiang/storefront/internal/catalog/domain"
	"github.com/kuaizhixiang/storefront/internal/checkout/domain"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidInput = errors.New("invalid input")
)

// CartReader exposes the session cart to checkout.
type CartReader interface {
	Items(ctx context.Context) ([]CartLine, error)
	Clear(ctx context.Context) error
}

type CartLine struct {
	ProductID string
	Quantity  int64
}

// CatalogReader re-resolves products so quotes always price against
// current tier data, not the cart's snapshot.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (catalogdomain.Product, error)
}

// PaymentGateway is the hosted checkout provider: it accepts the priced
// cart and answers with a redirect URL. Opaque by design.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (SessionResponse, error)
}

type SessionLineItem struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type SessionRequest struct {
	LineItems    []SessionLineItem `json:"lineItems"`
	CustomerMail string            `json:"customerEmail"`
	Locale       string            `json:"locale"`
	Metadata     map[string]string `json:"metadata"`
	SuccessURL   string            `json:"successUrl"`
	CancelURL    string            `json:"cancelUrl"`
}

type SessionResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"url"`
}

// Session pairs the provider redirect with the local order summary.
type Session struct {
	ID          string       `json:"sessionId"`
	RedirectURL string       `json:"redirectUrl"`
	Order       domain.Order `json:"order"`
}

const (
	standardShippingFee int64 = 500
	expressShippingFee  int64 = 1000
)

type Service struct {
	cart    CartReader
	catalog CatalogReader
	gateway PaymentGateway

	baseURL       string
	maxConcurrent int
	now           func() time.Time
}

func NewService(cart CartReader, catalog CatalogReader, gateway PaymentGateway, baseURL string, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		catalog:       catalog,
		gateway:       gateway,
		baseURL:       strings.TrimRight(baseURL, "/"),
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

// Quote prices the current cart through the tier engine and adds the
// delivery fee. The numbers here are exactly what the provider will be
// asked to charge.
func (s *Service) Quote(ctx context.Context, delivery domain.DeliveryOption) (domain.Quote, error) {
	lines, err := s.cart.Items(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(lines) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	quoteLines := make([]domain.QuoteLine, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range lines {
		idx := idx
		g.Go(func() error {
			ln := lines[idx]
			product, err := s.catalog.GetProduct(ctx, ln.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", ln.ProductID, err)
			}

			quoteLines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name.EN,
				Quantity:  ln.Quantity,
				UnitPrice: catalogdomain.UnitPrice(product, ln.Quantity),
				LineTotal: catalogdomain.TotalPrice(product, ln.Quantity),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var subtotal int64
	for _, ln := range quoteLines {
		subtotal += ln.LineTotal
	}

	return domain.Quote{
		Lines:    quoteLines,
		Subtotal: subtotal,
		Shipping: ShippingFee(delivery),
		Total:    subtotal + ShippingFee(delivery),
	}, nil
}

// ShippingFee is flat per delivery option. Unknown options ship
// standard.
func ShippingFee(delivery domain.DeliveryOption) int64 {
	if delivery == domain.DeliveryExpress {
		return expressShippingFee
	}
	return standardShippingFee
}

type CreateSessionInput struct {
	ShippingInfo   domain.ShippingInfo
	DeliveryOption domain.DeliveryOption
	Locale         string
}

// CreateSession quotes the cart, hands the priced lines to the payment
// gateway and returns its redirect URL together with the local order
// summary. The cart is left intact; the client clears it once the
// provider confirms payment.
func (s *Service) CreateSession(ctx context.Context, in CreateSessionInput) (Session, error) {
	if strings.TrimSpace(in.ShippingInfo.Email) == "" || strings.TrimSpace(in.ShippingInfo.Name) == "" {
		return Session{}, ErrInvalidInput
	}

	locale := in.Locale
	switch locale {
	case "zh", "ja", "en":
	default:
		locale = "en"
	}

	quote, err := s.Quote(ctx, in.DeliveryOption)
	if err != nil {
		return Session{}, err
	}

	items := make([]SessionLineItem, 0, len(quote.Lines)+1)
	for _, ln := range quote.Lines {
		items = append(items, SessionLineItem{
			Name:      ln.Name,
			UnitPrice: ln.UnitPrice,
			Quantity:  ln.Quantity,
		})
	}
	items = append(items, SessionLineItem{
		Name:      "Shipping",
		UnitPrice: quote.Shipping,
		Quantity:  1,
	})

	resp, err := s.gateway.CreateCheckoutSession(ctx, SessionRequest{
		LineItems:    items,
		CustomerMail: in.ShippingInfo.Email,
		Locale:       locale,
		Metadata: map[string]string{
			"shipping_name":       in.ShippingInfo.Name,
			"shipping_phone":      in.ShippingInfo.Phone,
			"shipping_postcode":   in.ShippingInfo.Postcode,
			"shipping_prefecture": in.ShippingInfo.Prefecture,
			"shipping_city":       in.ShippingInfo.City,
			"shipping_street":     in.ShippingInfo.Street,
			"shipping_building":   in.ShippingInfo.Building,
			"shipping_notes":      in.ShippingInfo.Notes,
			"delivery_option":     string(in.DeliveryOption),
		},
		SuccessURL: fmt.Sprintf("%s/%s/order/success?session_id={CHECKOUT_SESSION_ID}", s.baseURL, locale),
		CancelURL:  fmt.Sprintf("%s/%s/checkout", s.baseURL, locale),
	})
	if err != nil {
		return Session{}, fmt.Errorf("create checkout session: %w", err)
	}

	return Session{
		ID:          resp.SessionID,
		RedirectURL: resp.RedirectURL,
		Order: domain.Order{
			ID:             uuid.NewString(),
			Quote:          quote,
			ShippingInfo:   in.ShippingInfo,
			DeliveryOption: in.DeliveryOption,
			CreatedAt:      s.now(),
		},
	}, nil
}
