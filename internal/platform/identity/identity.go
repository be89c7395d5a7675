package identity

import "errors"

// Identity is the verified session subject handed to handlers.
// It mirrors what the external identity provider asserts about the caller;
// role/privilege is never part of it (the user directory owns roles).
type Identity struct {
	SubjectID     string
	Email         string
	EmailVerified bool
}

var (
	ErrMissingCredential = errors.New("missing bearer credential")
	ErrInvalidCredential = errors.New("invalid bearer credential")
	ErrExpiredCredential = errors.New("expired bearer credential")
)
