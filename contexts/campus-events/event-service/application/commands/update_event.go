package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// UpdateEventCommand edits event details. Ownership or ADMIN is required;
// status never moves through this path.
type UpdateEventCommand struct {
	EventID     string
	ActorID     string
	ActorAdmin  bool
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	Capacity    *int
}

type UpdateEventUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (entities.Event, error) {
	eventID := strings.TrimSpace(cmd.EventID)
	if eventID == "" {
		return entities.Event{}, domainerrors.ErrInvalidEventID
	}

	event, err := u.Repository.GetEvent(ctx, eventID)
	if err != nil {
		return entities.Event{}, err
	}
	if !cmd.ActorAdmin && event.CreatedBy != strings.TrimSpace(cmd.ActorID) {
		return entities.Event{}, domainerrors.ErrForbidden
	}
	if cmd.Title != nil && strings.TrimSpace(*cmd.Title) == "" {
		return entities.Event{}, domainerrors.ErrInvalidInput
	}
	if cmd.Capacity != nil && *cmd.Capacity < 0 {
		return entities.Event{}, domainerrors.ErrInvalidInput
	}

	return u.Repository.UpdateEvent(ctx, eventID, ports.EventUpdate{
		Title:       cmd.Title,
		Description: cmd.Description,
		Location:    cmd.Location,
		StartsAt:    cmd.StartsAt,
		EndsAt:      cmd.EndsAt,
		Capacity:    cmd.Capacity,
		UpdatedAt:   u.now(),
	})
}

func (u UpdateEventUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
