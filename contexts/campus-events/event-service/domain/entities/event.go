package entities

import (
	"strings"
	"time"
)

// EventStatus is the moderation state of an event.
type EventStatus string

const (
	StatusPending   EventStatus = "PENDING"
	StatusApproved  EventStatus = "APPROVED"
	StatusRejected  EventStatus = "REJECTED"
	StatusCancelled EventStatus = "CANCELLED"
)

// ParseStatus normalizes a raw status value; ok is false for unknown values.
func ParseStatus(raw string) (EventStatus, bool) {
	switch EventStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, true
	case StatusApproved:
		return StatusApproved, true
	case StatusRejected:
		return StatusRejected, true
	case StatusCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Event is a campus event owned by exactly one directory record.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Location    string      `json:"location,omitempty"`
	StartsAt    time.Time   `json:"starts_at"`
	EndsAt      *time.Time  `json:"ends_at,omitempty"`
	Capacity    int         `json:"capacity,omitempty"`
	Status      EventStatus `json:"status"`
	CreatedBy   string      `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
