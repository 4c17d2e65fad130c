package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user id injected by the Auth middleware
// and performs a fast-fail check before any service call. JWT numeric claims
// decode as float64; an absent or non-positive id means the token is
// structurally valid but operationally unusable, so reject with 401.
func ctxUserID(c echo.Context) (uint, error) {
	raw, ok := c.Get("user_id").(float64)
	if !ok || raw <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return uint(raw), nil
}
