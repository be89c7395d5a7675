package queries

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/ports"
)

// GetUserUseCase loads one directory record by subject id.
type GetUserUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetUserUseCase) Execute(ctx context.Context, userID string) (entities.User, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.User{}, domainerrors.ErrInvalidUserID
	}
	return u.Repository.GetUser(ctx, strings.TrimSpace(userID))
}
