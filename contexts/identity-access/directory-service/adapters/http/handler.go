package httpadapter

import (
	"context"
	"log/slog"

	application "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application/commands"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application/queries"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	httptransport "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	GetUser    queries.GetUserUseCase
	ListUsers  queries.ListUsersUseCase
	UpdateUser commands.UpdateUserUseCase
	Logger     *slog.Logger
}

func (h Handler) GetUserHandler(ctx context.Context, userID string) (httptransport.UserDTO, error) {
	user, err := h.GetUser.Execute(ctx, userID)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return userDTO(user), nil
}

func (h Handler) ListUsersHandler(ctx context.Context) (httptransport.ListUsersResponse, error) {
	users, err := h.ListUsers.Execute(ctx)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	items := make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, userDTO(user))
	}
	return httptransport.ListUsersResponse{Users: items}, nil
}

// UpdateUserHandler applies a profile/role update on behalf of the actor.
func (h Handler) UpdateUserHandler(
	ctx context.Context,
	actorID string,
	actorAdmin bool,
	targetID string,
	request httptransport.UpdateUserRequest,
) (httptransport.UserDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http update user received",
		"event", "directory_http_update_received",
		"module", "identity-access/directory-service",
		"layer", "transport",
		"actor_id", actorID,
		"user_id", targetID,
	)

	user, err := h.UpdateUser.Execute(ctx, commands.UpdateUserCommand{
		ActorID:    actorID,
		ActorAdmin: actorAdmin,
		TargetID:   targetID,
		Name:       request.Name,
		Avatar:     request.Avatar,
		Role:       request.Role,
	})
	if err != nil {
		logger.Error("http update user failed",
			"event", "directory_http_update_failed",
			"module", "identity-access/directory-service",
			"layer", "transport",
			"actor_id", actorID,
			"user_id", targetID,
			"error", err.Error(),
		)
		return httptransport.UserDTO{}, err
	}
	return userDTO(user), nil
}

func userDTO(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
