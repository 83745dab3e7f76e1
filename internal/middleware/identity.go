package middleware

// identity.go resolves the requester identity attached to each inbound
// request. Authentication itself is the transport adapter's problem;
// the engine trusts the identity the adapter forwards in the
// X-Requester header. The value is an opaque string stored on the
// reservation and echoed back in conflict rejections.

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
)

// requesterKey is the context key under which the identity is stored.
const requesterKey = "requester"

// RequireRequester extracts the X-Requester header, rejects requests
// that omit it, and stores the trimmed value in the Echo context for
// handlers and the rate limiter.
func RequireRequester() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            id := strings.TrimSpace(c.Request().Header.Get("X-Requester"))
            if id == "" {
                return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing X-Requester header"})
            }
            c.Set(requesterKey, id)
            return next(c)
        }
    }
}

// Requester returns the identity stored by RequireRequester, or
// "guest" on routes where the middleware is not applied.
func Requester(c echo.Context) string {
    if v, ok := c.Get(requesterKey).(string); ok && v != "" {
        return v
    }
    return "guest"
}
