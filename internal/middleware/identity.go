package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the subject stored by JWTAuth, or "anon" for
// unauthenticated requests.  Rate-limit keys use it to separate callers
// behind the same address.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64: // numeric JSON claims decode as float64
		return fmt.Sprintf("%.0f", v)
	}
	return "anon"
}
