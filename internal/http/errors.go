package httpapi

import (
	"errors"
	"net/http"

	catalogapp "github.com/kuaizhixiang/storefront/internal/catalog/app"
	checkoutapp "github.com/kuaizhixiang/storefront/internal/checkout/app"
	supportapp "github.com/kuaizhixiang/storefront/internal/support/app"
)

// httpStatusFromError maps application errors onto HTTP statuses. The
// provider and mailer collaborators surface as a generic 502/500: the
// customer only needs to know the request did not go through.
func httpStatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput),
		errors.Is(err, supportapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
