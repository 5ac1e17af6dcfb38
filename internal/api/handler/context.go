package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Auth middleware.
// Absence means the middleware never ran for this route.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
