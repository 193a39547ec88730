package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talenthub/accounts-api/internal/core/domain"
)

func TestTokenIssuer_IssueVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("acc_123", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	id, role, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if id != "acc_123" {
		t.Fatalf("expected account id acc_123, got %s", id)
	}
	if role != domain.RoleClient {
		t.Fatalf("expected role client, got %s", role)
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	if issuer.ttl != DefaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTokenTTL, issuer.ttl)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", 7*24*time.Hour)

	token, err := issuer.Issue("acc_123", domain.RoleFreelancer)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Just before the 7-day boundary the token still verifies.
	issuer.now = func() time.Time { return time.Now().Add(7*24*time.Hour - time.Minute) }
	if _, _, err := issuer.Verify(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// Past the boundary it does not.
	issuer.now = func() time.Time { return time.Now().Add(7*24*time.Hour + time.Minute) }
	if _, _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after expiry, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("acc_123", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}

func TestTokenIssuer_UnknownRoleClaim(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("acc_123", domain.Role("admin"))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for unknown role, got %v", err)
	}
}

func TestTokenIssuer_RejectsForeignSigningMethod(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	claims := jwt.MapClaims{
		"sub":  "acc_123",
		"role": string(domain.RoleClient),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none method failed: %v", err)
	}

	if _, _, err := issuer.Verify(unsigned); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg none token, got %v", err)
	}
}
