package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskdeck/taskdeck/internal/token"
)

const testKey = "token-test-secret-at-least-32-ch!!"

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := token.NewIssuer([]byte(testKey), time.Hour)

	signed, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != "user-1" {
		t.Errorf("subject = %q, want %q", sub, "user-1")
	}
}

func TestVerify_ExpiredToken_IsInvalid(t *testing.T) {
	// Sign a token whose expiry is already in the past with the same key.
	claims := jwt.MapClaims{
		"sub": "user-1",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = token.NewIssuer([]byte(testKey), time.Hour).Verify(signed)
	if !errors.Is(err, token.ErrInvalid) {
		t.Errorf("want ErrInvalid, got %v", err)
	}
}

func TestVerify_WrongKey_IsInvalid(t *testing.T) {
	signed, err := token.NewIssuer([]byte("another-key-that-is-32-chars-long!"), time.Hour).Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = token.NewIssuer([]byte(testKey), time.Hour).Verify(signed)
	if !errors.Is(err, token.ErrInvalid) {
		t.Errorf("want ErrInvalid, got %v", err)
	}
}

func TestVerify_TamperedToken_IsInvalid(t *testing.T) {
	iss := token.NewIssuer([]byte(testKey), time.Hour)

	signed, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := signed[:len(signed)-2] + "xx"
	if _, err := iss.Verify(tampered); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("want ErrInvalid, got %v", err)
	}
}

func TestVerify_MissingSubject_IsInvalid(t *testing.T) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := token.NewIssuer([]byte(testKey), time.Hour).Verify(signed); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("want ErrInvalid, got %v", err)
	}
}

func TestVerify_Garbage_IsInvalid(t *testing.T) {
	iss := token.NewIssuer([]byte(testKey), time.Hour)

	if _, err := iss.Verify("not.a.jwt"); !errors.Is(err, token.ErrInvalid) {
		t.Errorf("want ErrInvalid, got %v", err)
	}
}
