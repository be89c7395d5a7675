package errors

import "errors"

var (
	ErrInvalidClubID     = errors.New("club id is required")
	ErrInvalidInput      = errors.New("club input is invalid")
	ErrClubNotFound      = errors.New("club not found")
	ErrForbidden         = errors.New("operation not allowed for this user")
	ErrAlreadyMember     = errors.New("user is already a member of this club")
	ErrNotMember         = errors.New("user is not a member of this club")
	ErrCreatorCannotLeave = errors.New("club creator cannot leave their own club")
)
