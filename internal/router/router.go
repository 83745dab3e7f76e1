package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // the Echo web framework handles routing
    "github.com/redis/go-redis/v9"

    "github.com/jackyoon/meeting-room-reservation/internal/config"
    "github.com/jackyoon/meeting-room-reservation/internal/handler"
    "github.com/jackyoon/meeting-room-reservation/internal/middleware"
)

// RegisterRoutes registers routes that carry no requester identity on
// the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterEngine registers the reservation engine's HTTP surface.
// The message endpoint requires the X-Requester identity header and
// is rate limited per requester; the read-only browse endpoints are
// cached briefly in Redis.  With rdb == nil both middlewares become
// pass-throughs and the API still works.
func RegisterEngine(e *echo.Echo, mh *handler.MessageHandler, rh *handler.ReservationHandler, rdb *redis.Client) {
    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    v1 := e.Group("/v1")

    // Inbound messages from the chat adapter.  One call per message,
    // so the limiter keys on the requester behind the adapter rather
    // than the adapter's IP alone.
    v1.POST("/messages", mh.HandleMessage, middleware.RequireRequester(), limiter)

    // Read-only browse endpoints for the calendar front-end.
    v1.GET("/reservations", rh.ListReservations, cache)
    v1.GET("/rooms", rh.ListRooms, cache)
}
