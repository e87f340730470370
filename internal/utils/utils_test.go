package utils

import (
	"regexp"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestRandomHexUpper(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[0-9A-F]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		s, err := RandomHexUpper(3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !pattern.MatchString(s) {
			t.Fatalf("value %q does not match %v", s, pattern)
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied output, got %d distinct values", len(seen))
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("expected mismatch to fail")
	}
}

func TestNewAccessToken(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", "root", "ADMIN", 15)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tok.Token == "" {
		t.Fatalf("expected signed token")
	}
	if remaining := time.Until(tok.Exp); remaining <= 0 || remaining > 15*time.Minute {
		t.Fatalf("expiration %v outside expected window", tok.Exp)
	}
}
