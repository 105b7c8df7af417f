package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestIssueAndParse(t *testing.T) {
	before := time.Now()
	tok, err := Issue(42, "ana@example.com", testSecret)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := Parse(tok, testSecret)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("user id: got %d, want 42", claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email: got %q, want %q", claims.Email, "ana@example.com")
	}

	// Expiry must be one hour after issuance.
	exp := claims.ExpiresAt.Time
	if exp.Before(before.Add(TTL-time.Minute)) || exp.After(time.Now().Add(TTL+time.Minute)) {
		t.Errorf("expiry %v not about %v from issuance", exp, TTL)
	}
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Issue(1, "a@b.c", testSecret)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := Parse(tok, "other-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseExpired(t *testing.T) {
	// Hand-roll a token that expired an hour ago.
	claims := Claims{
		UserID: 1,
		Email:  "a@b.c",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Parse(tok, testSecret); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", testSecret); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseRejectsUnsignedAlg(t *testing.T) {
	// A token signed with "none" must not validate.
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Parse(tok, testSecret); err == nil {
		t.Error("expected error for alg=none token")
	}
}
