package errors

import "errors"

var (
	ErrInvalidPostID = errors.New("post id is required")
	ErrInvalidInput  = errors.New("post input is invalid")
	ErrPostNotFound  = errors.New("post not found")
	ErrForbidden     = errors.New("operation not allowed for this user")
)
