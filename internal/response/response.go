package response

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "wedplan/internal/errors"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// OK writes a success envelope with the given status code and payload.
func OK(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, Envelope{
		Status:    "success",
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// Message writes a success envelope carrying only a message.
func Message(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{
		Status:    "success",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// ErrorHandler is the terminal echo error handler. Operational errors keep
// their status and message; echo's own errors (routing, JWT middleware) are
// passed through; everything else logs and becomes a generic 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		var opErr *apperrors.Error
		var echoErr *echo.HTTPError
		switch {
		case stderrors.As(err, &opErr):
			status = opErr.Status
			message = opErr.Message
		case stderrors.As(err, &echoErr):
			status = echoErr.Code
			if m, ok := echoErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(echoErr.Code)
			}
		default:
			logger.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		body := Envelope{
			Status:    "error",
			Message:   message,
			Timestamp: time.Now().UTC(),
		}
		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("write error response")
		}
	}
}
