package errors

import "errors"

var (
	ErrInvalidNotificationID = errors.New("notification id is required")
	ErrInvalidInput          = errors.New("notification input is invalid")
	// ErrNotificationNotFound also covers rows addressed to another user:
	// existence is not revealed to non-addressees.
	ErrNotificationNotFound = errors.New("notification not found")
)
