package identity

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates bearer tokens issued by the external identity provider.
// Tokens are HS256-signed with a shared secret; only subject/email claims are
// consumed here.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth jwt secret is required")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Verify parses and validates a raw bearer token and extracts the identity.
func (v *Verifier) Verify(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, ErrMissingCredential
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredCredential
		}
		return Identity{}, ErrInvalidCredential
	}
	if !token.Valid {
		return Identity{}, ErrInvalidCredential
	}

	subject, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(subject) == "" {
		return Identity{}, ErrInvalidCredential
	}

	email, _ := claims["email"].(string)
	verified, _ := claims["email_verified"].(bool)

	return Identity{
		SubjectID:     subject,
		Email:         email,
		EmailVerified: verified,
	}, nil
}

// FromAuthorizationHeader extracts the raw token from an Authorization header
// value. An empty or non-bearer header yields ErrMissingCredential.
func FromAuthorizationHeader(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrMissingCredential
	}
	return strings.TrimSpace(parts[1]), nil
}
