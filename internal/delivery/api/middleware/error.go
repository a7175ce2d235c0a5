package middleware

import (
	"log/slog"
	"net/http"

	"directorio/internal/delivery/api/response"
	deliverycontext "directorio/internal/delivery/context"
	domainerrors "directorio/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Field violations are reported together so a form can mark every field at once.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, validationErr.HTTPCode(), validationErr.ErrorCode(), validationErr.Message(), validationErr.Violations())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, message := httpErrorCode(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && code == "HTTP_ERROR" {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func httpErrorCode(status int) (code, message string) {
	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message()
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", "Método no permitido"
	case http.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE", "La solicitud supera el tamaño permitido"
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message()
	default:
		return "HTTP_ERROR", "Ocurrió un error"
	}
}
