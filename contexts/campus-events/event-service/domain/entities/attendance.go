package entities

import "time"

// Attendance is the membership edge between one event and one user.
// At most one edge exists per (event, user) pair.
type Attendance struct {
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
