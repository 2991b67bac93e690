package jwtauth

import (
	"testing"
	"time"
)

func TestJWTTokenRoundTrip(t *testing.T) {
	token, err := createJWTToken(42, "mina", time.Hour, "test-key")
	if err != nil {
		t.Fatalf("createJWTToken() error = %v", err)
	}

	claims, err := fetchJWTToken(token.Value, "test-key")
	if err != nil {
		t.Fatalf("fetchJWTToken() error = %v", err)
	}
	if claims.UserID != 42 || claims.Nickname != "mina" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestFetchJWTTokenRejectsWrongKey(t *testing.T) {
	token, err := createJWTToken(42, "mina", time.Hour, "test-key")
	if err != nil {
		t.Fatalf("createJWTToken() error = %v", err)
	}

	if _, err := fetchJWTToken(token.Value, "other-key"); err == nil {
		t.Error("expected a signature error")
	}
}

func TestFetchJWTTokenRejectsExpired(t *testing.T) {
	token, err := createJWTToken(42, "mina", -time.Minute, "test-key")
	if err != nil {
		t.Fatalf("createJWTToken() error = %v", err)
	}

	if _, err := fetchJWTToken(token.Value, "test-key"); err == nil {
		t.Error("expected an expiry error")
	}
}
