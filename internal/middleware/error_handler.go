package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"influencerMDP/business/selection"
	"influencerMDP/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Message string `json:"message"`
}

// ErrorHandler renders every error that escapes a handler as
// {"message": ...}. Unknown errors become 500 and are logged.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		msg = fmt.Sprint(he.Message)
	case errors.Is(err, selection.ErrRunNotFound):
		code = http.StatusNotFound
		msg = err.Error()
	default:
		logger.Error("unhandled error",
			"method", c.Request().Method,
			"path", c.Path(),
			"trace_id", selection.TraceIDFromContext(c.Request().Context()),
			"error", err,
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, errorBody{Message: msg})
	}
	if writeErr != nil {
		logger.Error("failed to write error response", "error", writeErr)
	}
}
