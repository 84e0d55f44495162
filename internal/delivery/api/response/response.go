// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"log/slog"
	"net/http"

	deliverycontext "cashless/internal/delivery/context"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Only for 4xx other than 401 and 403
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// FieldError names one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError reports a body, path or query value that could not be parsed.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// ValidationError renders validator failures with one entry per field.
func ValidationError(c echo.Context, err error) error {
	var details []FieldError
	var verrs playground.ValidationErrors
	if errors.As(err, &verrs) {
		details = make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}

	return Error(c, http.StatusBadRequest,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		details,
	)
}

func Unauthorized(c echo.Context) error {
	return HandleAppError(c, domainerrors.ErrUnauthorized)
}

func Forbidden(c echo.Context) error {
	return HandleAppError(c, domainerrors.ErrForbidden)
}

// HandleAppError renders an AppError. Anything else is returned for the error middleware.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)
		}
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
