package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrNotAuthenticated):
		// Defense-in-depth case: the UI should never offer the action
		// without a session. Deny generically.
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrWrongRole):
		return http.StatusForbidden, "operation not allowed for this role"
	case errors.Is(err, domain.ErrNoFarmOwned):
		return http.StatusForbidden, "add a farm before posting a job"
	case errors.Is(err, domain.ErrFarmNotFound):
		// Referential-integrity miss: unreachable under correct UI
		// wiring, so log it rather than swallowing silently.
		log.Warn().Str("path", c.Path()).Msg("farm lookup miss")
		return http.StatusNotFound, "farm not found"
	case errors.Is(err, domain.ErrJobNotFound):
		log.Warn().Str("path", c.Path()).Msg("job lookup miss")
		return http.StatusNotFound, "job not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
