package utils

import (
	"testing"
	"time"
)

func TestLoginToken_RoundTrip(t *testing.T) {
	token, err := GenerateLoginToken("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken error: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.Type != "login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("期望 subject 为邮箱，实际为 %q", claims.Subject)
	}
}

func TestParseLoginToken_Expired(t *testing.T) {
	token, err := GenerateLoginToken("alice@example.com", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	_, err = ParseLoginToken(token)
	if err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestParseLoginToken_Garbage(t *testing.T) {
	if _, err := ParseLoginToken("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
