package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/api/middleware"
	"github.com/talenthub/accounts-api/internal/core/domain"
)

// ctxIdentity extracts the verified claims injected by the Auth middleware.
// An empty account id or role means the middleware did not run; reject
// with 401 rather than trusting the request.
func ctxIdentity(c echo.Context) (accountID string, role domain.Role, err error) {
	accountID, _ = c.Get(middleware.CtxAccountID).(string)
	roleStr, _ := c.Get(middleware.CtxRole).(string)
	if accountID == "" || !domain.ValidRole(roleStr) {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, domain.Role(roleStr), nil
}
