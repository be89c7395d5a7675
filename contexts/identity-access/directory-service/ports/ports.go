package ports

import (
	"context"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// ProvisionUserInput seeds a lazily created directory record.
type ProvisionUserInput struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// UserUpdate carries the mutable directory fields. Nil pointers leave the
// stored value untouched.
type UserUpdate struct {
	Name      *string
	Avatar    *string
	Role      *entities.Role
	UpdatedAt time.Time
}

// Repository is the persistence boundary for directory records.
type Repository interface {
	GetUser(ctx context.Context, id string) (entities.User, error)
	// ProvisionUser inserts a record keyed on id unless one already exists.
	// The returned flag is true only when this call created the record, so
	// concurrent first logins settle on exactly one row.
	ProvisionUser(ctx context.Context, input ProvisionUserInput) (entities.User, bool, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (entities.User, error)
}
