package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transfer-server/internal/pricing"
	"github.com/carson-networks/transfer-server/internal/service"
)

// StatusClientClosedRequest reports a request the caller abandoned.
const StatusClientClosedRequest = 499

// FromService maps a service error to an HTTP error with msg as the title.
func FromService(err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrRecipientNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrAccountInactive):
		return huma.NewError(http.StatusUnprocessableEntity, msg, err)
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrMissingRecipient),
		errors.Is(err, service.ErrInvalidAuthorizationMethod),
		errors.Is(err, service.ErrUnsupportedCurrency),
		errors.Is(err, pricing.ErrInvalidAmount):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, service.ErrInvalidTransition):
		return huma.NewError(http.StatusConflict, msg, err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return huma.NewError(StatusClientClosedRequest, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
