package commands

import (
	"context"
	"log/slog"
	"strings"

	application "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// LeaveEventCommand removes the actor's attendance edge.
type LeaveEventCommand struct {
	EventID string
	ActorID string
}

type LeaveEventUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u LeaveEventUseCase) Execute(ctx context.Context, cmd LeaveEventCommand) error {
	logger := application.ResolveLogger(u.Logger)

	eventID := strings.TrimSpace(cmd.EventID)
	actorID := strings.TrimSpace(cmd.ActorID)
	if eventID == "" {
		return domainerrors.ErrInvalidEventID
	}
	if actorID == "" {
		return domainerrors.ErrForbidden
	}

	event, err := u.Repository.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	now := u.Clock.Now().UTC()
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	payload, err := attendanceEnvelope(outboxID, event, actorID, "left", now)
	if err != nil {
		return err
	}

	if err := u.Repository.RemoveAttendance(ctx, ports.LeaveInput{
		EventID:       eventID,
		UserID:        actorID,
		LeftAt:        now,
		OutboxID:      outboxID,
		OutboxPayload: payload,
	}); err != nil {
		return err
	}

	logger.Info("event left",
		"event", "event_left",
		"module", "campus-events/event-service",
		"layer", "application",
		"event_id", eventID,
		"user_id", actorID,
	)
	return nil
}
