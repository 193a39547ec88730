package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/auth"
	"github.com/talenthub/accounts-api/internal/core/domain"
)

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	signed, err := tokens.Issue("acc_1", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newAuthContext(t, "Bearer "+signed)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(CtxAccountID) != "acc_1" {
			t.Fatalf("account id not set")
		}
		if c.Get(CtxRole) != "client" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	c, _ := newAuthContext(t, "")

	err := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)

	for _, header := range []string{"Basic abc", "Bearer", "justonetoken"} {
		c, _ := newAuthContext(t, header)
		err := Auth(tokens)(func(c echo.Context) error { return nil })(c)
		assertHTTPStatus(t, err, http.StatusUnauthorized)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	signed, err := auth.NewTokenIssuer("other-secret", time.Hour).Issue("acc_1", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newAuthContext(t, "Bearer "+signed)
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	handlerErr := Auth(tokens)(func(c echo.Context) error { return nil })(c)

	assertHTTPStatus(t, handlerErr, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected status %d, got %d", want, he.Code)
	}
}
