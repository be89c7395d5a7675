package httptransport

import "time"

// ErrorResponse is the uniform failure body; clients display Error verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserDTO mirrors one directory record.
type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListUsersResponse struct {
	Users []UserDTO `json:"users"`
}

// UpdateUserRequest carries the mutable profile fields. Role is only honored
// for ADMIN callers.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,url"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=USER MODERATOR ADMIN"`
}
