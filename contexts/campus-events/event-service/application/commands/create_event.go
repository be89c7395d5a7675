package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// CreateEventCommand submits a new event. Every submission starts PENDING and
// waits for admin moderation.
type CreateEventCommand struct {
	ActorID     string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	Capacity    int
}

type CreateEventUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (entities.Event, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.ActorID) == "" {
		return entities.Event{}, domainerrors.ErrForbidden
	}
	if strings.TrimSpace(cmd.Title) == "" || cmd.StartsAt.IsZero() {
		return entities.Event{}, domainerrors.ErrInvalidInput
	}
	if cmd.EndsAt != nil && cmd.EndsAt.Before(cmd.StartsAt) {
		return entities.Event{}, domainerrors.ErrInvalidInput
	}
	if cmd.Capacity < 0 {
		return entities.Event{}, domainerrors.ErrInvalidInput
	}

	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Event{}, err
	}
	now := u.Clock.Now().UTC()
	event := entities.Event{
		ID:          id,
		Title:       strings.TrimSpace(cmd.Title),
		Description: strings.TrimSpace(cmd.Description),
		Location:    strings.TrimSpace(cmd.Location),
		StartsAt:    cmd.StartsAt.UTC(),
		EndsAt:      cmd.EndsAt,
		Capacity:    cmd.Capacity,
		Status:      entities.StatusPending,
		CreatedBy:   strings.TrimSpace(cmd.ActorID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.Repository.CreateEvent(ctx, event); err != nil {
		return entities.Event{}, err
	}

	logger.Info("event submitted",
		"event", "event_submitted",
		"module", "campus-events/event-service",
		"layer", "application",
		"event_id", event.ID,
		"created_by", event.CreatedBy,
	)
	return event, nil
}
