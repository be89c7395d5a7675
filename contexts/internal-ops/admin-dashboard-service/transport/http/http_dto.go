package httptransport

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type RecentUserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentEventDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardResponse struct {
	TotalUsers     int              `json:"total_users"`
	TotalEvents    int              `json:"total_events"`
	TotalClubs     int              `json:"total_clubs"`
	TotalPosts     int              `json:"total_posts"`
	EventsByStatus map[string]int   `json:"events_by_status"`
	RecentUsers    []RecentUserDTO  `json:"recent_users"`
	RecentEvents   []RecentEventDTO `json:"recent_events"`
	GeneratedAt    time.Time        `json:"generated_at"`
}
