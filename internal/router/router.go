package router // package router registers the HTTP routes of the roster API

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-roster/internal/handler"
	"github.com/iliyamo/bus-seat-roster/internal/middleware"
)

// Deps is everything RegisterRoutes needs.  Cache and RateLimit may be
// pass-through middleware when Redis is not configured.
type Deps struct {
	DB        *sql.DB // nil when the roster lives in memory
	JWTSecret string
	Auth      *handler.AuthHandler
	Rosters   *handler.RosterHandler
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

// RegisterRoutes mounts the health check, organizer login and the roster
// endpoints.  Parsing a preview is public; committing and resetting need
// an organizer token; reads of the committed roster are cached.
func RegisterRoutes(e *echo.Echo, d Deps) {
	if d.Cache == nil {
		d.Cache = noop
	}
	if d.RateLimit == nil {
		d.RateLimit = noop
	}
	e.GET("/healthz", handler.Health(d.DB))

	// identity first so per-user rate-limit keys see the caller
	v1 := e.Group("/v1", middleware.OptionalJWT(d.JWTSecret), d.RateLimit)
	v1.POST("/auth/login", d.Auth.Login)

	rosters := v1.Group("/rosters")
	rosters.POST("/preview", d.Rosters.Preview)

	reads := rosters.Group("/current", d.Cache)
	reads.GET("", d.Rosters.Current)
	reads.GET("/stats", d.Rosters.Stats)
	reads.GET("/groups", d.Rosters.Groups)
	reads.GET("/chart", d.Rosters.Chart)

	organizer := []echo.MiddlewareFunc{
		middleware.JWTAuth(d.JWTSecret),
		middleware.RequireRole(middleware.RoleOrganizer),
	}
	rosters.POST("", d.Rosters.Commit, organizer...)
	rosters.DELETE("/current", d.Rosters.Reset, organizer...)
}

func noop(next echo.HandlerFunc) echo.HandlerFunc { return next }
