package utils

import (
	"testing"
	"time"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Generate("user-123", "jane@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	sub, err := issuer.ExtractID(token)
	if err != nil {
		t.Fatalf("failed to extract id: %v", err)
	}
	if sub != "user-123" {
		t.Errorf("expected subject user-123, got %s", sub)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)

	token, err := issuer.Generate("user-123", "jane@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := other.ExtractID(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Generate("user-123", "jane@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := issuer.ExtractID(token); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	if _, err := issuer.ExtractID("not-a-token"); err == nil {
		t.Error("expected a malformed token to be rejected")
	}
}
