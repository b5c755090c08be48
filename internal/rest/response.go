package rest

import (
	"errors"
	"net/http"

	"influencerMDP/business/mdp"
	"influencerMDP/business/selection"
	"influencerMDP/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// serviceError maps a service error to its HTTP status. Rejected inputs are
// the caller's fault; anything unrecognised is ours.
func serviceError(c echo.Context, err error) error {
	var cfgErr *mdp.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	case errors.Is(err, selection.ErrRunNotFound):
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	logger.Error("request failed",
		"path", c.Path(),
		"trace_id", selection.TraceIDFromContext(c.Request().Context()),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}
