package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	subject := "alice@example.com"

	tok, err := IssueToken(subject, secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	got, err := ParseSubject(tok, secret)
	if err != nil {
		t.Fatalf("ParseSubject error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %q want %q", got, subject)
	}
}

func TestParseSubject_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := IssueToken("alice@example.com", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = ParseSubject(tok, secret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseSubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("alice@example.com", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = ParseSubject(tok, []byte("wrong-secret"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestParseSubject_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseSubject("not.a.jwt", []byte("k"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestParseSubject_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := IssueToken("", secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = ParseSubject(tok, secret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty subject, got %v", err)
	}
}
