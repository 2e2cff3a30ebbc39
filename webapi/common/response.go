// Package common holds the response envelope, problem-details writer and
// request binding shared by every route package.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	infrarepo "github.com/kouame/payboard/infra/repository/transaction"
	"github.com/kouame/payboard/pkg/currency"
	"github.com/kouame/payboard/pkg/domain/money"
	"github.com/kouame/payboard/pkg/domain/transaction"
)

// Response is the standard envelope for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON writes an RFC 9457 problem-details response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps errors from the domain taxonomy to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var (
		notFound     *transaction.NotFoundError
		cannotRetry  *transaction.CannotRetryError
		cannotCancel *transaction.CannotCancelError
		exportLimit  *transaction.ExportLimitExceededError
	)
	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &cannotRetry), errors.As(err, &cannotCancel):
		return fiber.StatusConflict
	case errors.As(err, &exportLimit):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, transaction.ErrEmptyID),
		errors.Is(err, transaction.ErrInvalidIDFormat),
		errors.Is(err, transaction.ErrInvalidIBANLength),
		errors.Is(err, transaction.ErrInvalidIBANFormat),
		errors.Is(err, transaction.ErrInvalidAmountRange),
		errors.Is(err, transaction.ErrInvalidDateRange),
		errors.Is(err, money.ErrNegativeAmount),
		errors.Is(err, money.ErrCurrencyMismatch),
		errors.Is(err, currency.ErrUnsupportedCurrency):
		return fiber.StatusBadRequest
	case errors.Is(err, infrarepo.ErrNetworkFailure):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// DomainErrorJSON writes an error response with the status derived from the
// error kind. Every domain error carries a human-readable message, which
// becomes the problem detail.
func DomainErrorJSON(c *fiber.Ctx, title string, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), title, err.Error())
}

// BindAndValidate parses the query string into T and validates it. On
// failure it writes the error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.QueryParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid query parameters", err.Error())
	}
	if err := validate.Struct(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid query parameters", err.Error())
	}
	return &input, nil
}

var validate = validator.New()
