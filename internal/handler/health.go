package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports liveness for load balancers.  When db is non-nil it is
// pinged and an unreachable database turns the answer into a 503.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		store := "memory"
		if db != nil {
			store = "mysql"
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded", "store": store})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "store": store})
	}
}
