package commands

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// DeleteEventCommand removes an event and its attendance edges.
type DeleteEventCommand struct {
	EventID    string
	ActorID    string
	ActorAdmin bool
}

type DeleteEventUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) error {
	logger := application.ResolveLogger(u.Logger)

	eventID := strings.TrimSpace(cmd.EventID)
	if eventID == "" {
		return domainerrors.ErrInvalidEventID
	}
	event, err := u.Repository.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if !cmd.ActorAdmin && event.CreatedBy != strings.TrimSpace(cmd.ActorID) {
		return domainerrors.ErrForbidden
	}
	if err := u.Repository.DeleteEvent(ctx, eventID); err != nil {
		return err
	}

	logger.Info("event deleted",
		"event", "event_deleted",
		"module", "campus-events/event-service",
		"layer", "application",
		"event_id", eventID,
		"actor_id", cmd.ActorID,
	)
	return nil
}
