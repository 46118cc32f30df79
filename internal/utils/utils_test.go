package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "correct horse") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong horse") {
		t.Error("wrong password accepted")
	}
}

func TestNewAccessToken(t *testing.T) {
	const secret = "token-test-secret"
	access, err := NewAccessToken(secret, 42, "admin", 60)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if until := time.Until(access.Exp); until < 59*time.Minute || until > 61*time.Minute {
		t.Errorf("expiry %v not about an hour out", access.Exp)
	}

	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse issued token: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["username"] != "admin" {
		t.Errorf("username claim = %v", claims["username"])
	}
	if sub, _ := claims["sub"].(float64); sub != 42 {
		t.Errorf("sub claim = %v, want 42", claims["sub"])
	}

	// A different secret must not verify.
	if tok, _ := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	}); tok != nil && tok.Valid {
		t.Error("token verified under the wrong secret")
	}
}
