package jwthandling

import (
	"testing"
	"time"
)

func TestUserTokenRoundTrip(t *testing.T) {
	token, err := GenerateNewUserToken(time.Minute, "u1", "acme", true, map[string]string{"displayName": "Test User"}, "testkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, valid, err := ValidateUserToken(token, "testkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected token to be valid")
	}
	if claims.Subject != "u1" || claims.TenantID != "acme" || !claims.IsAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestUserTokenWrongKey(t *testing.T) {
	token, err := GenerateNewUserToken(time.Minute, "u1", "acme", false, nil, "testkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, valid, _ := ValidateUserToken(token, "otherkey")
	if valid {
		t.Error("expected token to be rejected with wrong key")
	}
}

func TestUserTokenExpired(t *testing.T) {
	token, err := GenerateNewUserToken(-time.Minute, "u1", "acme", false, nil, "testkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, valid, _ := ValidateUserToken(token, "testkey")
	if valid {
		t.Error("expected expired token to be rejected")
	}
}
