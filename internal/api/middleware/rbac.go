package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/api/metrics"
	"github.com/talenthub/accounts-api/internal/core/domain"
)

// RequireRole rejects requests whose token role differs from the route's
// expected role. Runs after Auth.
func RequireRole(expected domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if domain.Role(role) != expected {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "this endpoint requires the "+string(expected)+" role")
			}
			return next(c)
		}
	}
}
