package entities

import "time"

// Member roles inside a club. Distinct from portal-wide roles: the club
// creator administers their own club regardless of portal privileges.
const (
	MemberRoleAdmin  = "ADMIN"
	MemberRoleMember = "MEMBER"
)

type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Membership is a (club, user) edge; at most one per pair.
type Membership struct {
	ClubID   string    `json:"club_id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
