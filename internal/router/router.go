// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/avioline/seat-reservation/internal/config"
	"github.com/avioline/seat-reservation/internal/handler"
	"github.com/avioline/seat-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated surface: the seating
// chart, the landing-page menu dispatch, the reservation flow, ticket
// confirmation and the public revenue figure.  Chart and revenue reads
// go through the Redis response cache; reservation attempts go through
// the token-bucket rate limiter.  Both middlewares are pass-throughs
// when rdb is nil.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, r *handler.ReservationHandler, rdb *redis.Client) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e.GET("/v1/seats", p.GetSeatingChart, cache)
	e.GET("/v1/total-sales", p.TotalSales, cache)
	e.POST("/v1/menu", p.Menu)
	e.POST("/v1/reservations", r.Create, limit)
	e.GET("/v1/reservations/confirm/:ticket", p.ConfirmTicket)
}

// RegisterAdmin registers the admin login endpoint and the protected
// admin group.  Login lives outside the group; everything else requires
// a valid admin JWT, enforced by the JWTAuth and RequireRole middleware.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	e.POST("/v1/admin/login", a.Login)

	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))
	g.GET("/dashboard", a.Dashboard)
	g.DELETE("/reservations/:id", a.DeleteReservation)
}
