package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/ports"
)

// UpdateUserCommand mutates profile fields on a directory record.
// Role changes are a separate privilege: only ADMIN actors may set Role,
// while name/avatar are writable by the record owner or an ADMIN.
type UpdateUserCommand struct {
	ActorID    string
	ActorAdmin bool
	TargetID   string
	Name       *string
	Avatar     *string
	Role       *string
}

type UpdateUserUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(u.Logger)

	targetID := strings.TrimSpace(cmd.TargetID)
	if targetID == "" {
		return entities.User{}, domainerrors.ErrInvalidUserID
	}
	if cmd.Name == nil && cmd.Avatar == nil && cmd.Role == nil {
		return entities.User{}, domainerrors.ErrInvalidInput
	}

	update := ports.UserUpdate{
		Name:      cmd.Name,
		Avatar:    cmd.Avatar,
		UpdatedAt: u.now(),
	}

	if cmd.Role != nil {
		if !cmd.ActorAdmin {
			return entities.User{}, domainerrors.ErrForbidden
		}
		role, ok := entities.ParseRole(*cmd.Role)
		if !ok {
			return entities.User{}, domainerrors.ErrInvalidRole
		}
		update.Role = &role
	}

	if !cmd.ActorAdmin && strings.TrimSpace(cmd.ActorID) != targetID {
		return entities.User{}, domainerrors.ErrForbidden
	}

	user, err := u.Repository.UpdateUser(ctx, targetID, update)
	if err != nil {
		return entities.User{}, err
	}

	logger.Info("directory record updated",
		"event", "directory_record_updated",
		"module", "identity-access/directory-service",
		"layer", "application",
		"actor_id", cmd.ActorID,
		"user_id", targetID,
		"role_changed", cmd.Role != nil,
	)
	return user, nil
}

func (u UpdateUserUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
