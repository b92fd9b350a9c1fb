package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(secret, "checkout-service", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.ServiceName != "checkout-service" {
		t.Errorf("ServiceName = %q, want %q", claims.ServiceName, "checkout-service")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", "svc", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestParseJWTExpired(t *testing.T) {
	claims := Claims{
		ServiceName: "svc",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT("secret", token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("secret", "not-a-token"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}
