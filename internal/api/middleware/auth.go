package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/api/metrics"
	"github.com/talenthub/accounts-api/internal/auth"
)

// Context keys under which the verified claims are stored.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// Auth validates the Bearer token and injects (account id, role) into the
// request context. Missing, malformed, or invalid tokens are rejected with
// 401; a bad token is never fatal to the process.
func Auth(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			accountID, role, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(CtxAccountID, accountID)
			c.Set(CtxRole, string(role))

			return next(c)
		}
	}
}
