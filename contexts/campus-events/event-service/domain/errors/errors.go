package errors

import "errors"

var (
	ErrInvalidEventID    = errors.New("invalid event id")
	ErrInvalidInput      = errors.New("invalid event input")
	ErrInvalidStatus     = errors.New("invalid event status")
	ErrEventNotFound     = errors.New("event not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("status transition not permitted")
	ErrEventNotJoinable  = errors.New("event is not open for joining")
	ErrAlreadyJoined     = errors.New("already joined this event")
	ErrNotJoined         = errors.New("not joined to this event")
)
