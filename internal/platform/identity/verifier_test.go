package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	verifier, err := NewVerifier(testSecret)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	raw := signToken(t, testSecret, jwt.MapClaims{
		"sub":            "subject-1",
		"email":          "dana@campus.edu",
		"email_verified": true,
		"exp":            time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.Verify(raw)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.SubjectID != "subject-1" || identity.Email != "dana@campus.edu" || !identity.EmailVerified {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	verifier, _ := NewVerifier(testSecret)
	raw := signToken(t, testSecret, jwt.MapClaims{
		"sub": "subject-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := verifier.Verify(raw)
	if !errors.Is(err, ErrExpiredCredential) {
		t.Fatalf("expected ErrExpiredCredential, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	verifier, _ := NewVerifier(testSecret)
	raw := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "subject-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.Verify(raw)
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	verifier, _ := NewVerifier(testSecret)
	raw := signToken(t, testSecret, jwt.MapClaims{
		"email": "dana@campus.edu",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.Verify(raw)
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	verifier, _ := NewVerifier(testSecret)
	if _, err := verifier.Verify("   "); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestNewVerifierRequiresSecret(t *testing.T) {
	if _, err := NewVerifier("  "); err == nil {
		t.Fatal("expected an error for a blank secret")
	}
}

func TestFromAuthorizationHeader(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"case insensitive scheme", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"bare scheme", "Bearer ", "", true},
	}
	for _, tc := range cases {
		raw, err := FromAuthorizationHeader(tc.header)
		if tc.wantErr {
			if !errors.Is(err, ErrMissingCredential) {
				t.Fatalf("%s: expected ErrMissingCredential, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if raw != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, raw, tc.want)
		}
	}
}
