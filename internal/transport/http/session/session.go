// Package session extracts admin session tokens from HTTP requests.
package session

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// CookieName carries the admin session token for browser clients.
const CookieName = "admin_session"

// TokenFromRequest reads the session token from the Authorization bearer
// header or the session cookie, in that order. Empty when neither is present.
func TokenFromRequest(c echo.Context) string {
	authz := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authz, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer ")); token != "" {
			return token
		}
	}
	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}
