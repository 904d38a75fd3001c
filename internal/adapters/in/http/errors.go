package http

import (
	"errors"
	"net/http"

	"parcelmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Required *float64 `json:"required,omitempty"`
	Current  *float64 `json:"current,omitempty"`
}

// writeError maps a core error onto an HTTP status. Validation failures are
// the client's fault, precondition failures are lost races, and anything
// unclassified is a server error with the details kept out of the response.
func writeError(ctx echo.Context, err error) error {
	var insufficientErr *errs.InsufficientBalanceError
	if errors.As(err, &insufficientErr) {
		return ctx.JSON(http.StatusPaymentRequired, ErrorResponse{
			Code:     http.StatusPaymentRequired,
			Message:  err.Error(),
			Required: &insufficientErr.Required,
			Current:  &insufficientErr.Current,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrPreconditionFailed):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
