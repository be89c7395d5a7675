package queries

import (
	"context"
	"log/slog"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/ports"
)

// ListUsersUseCase returns all directory records, newest first.
type ListUsersUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListUsersUseCase) Execute(ctx context.Context) ([]entities.User, error) {
	return u.Repository.ListUsers(ctx)
}
