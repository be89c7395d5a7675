package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
	"github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

// JoinEventCommand adds the actor to an approved event's attendance.
type JoinEventCommand struct {
	EventID string
	ActorID string
}

type JoinEventUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u JoinEventUseCase) Execute(ctx context.Context, cmd JoinEventCommand) (entities.Attendance, error) {
	logger := application.ResolveLogger(u.Logger)

	eventID := strings.TrimSpace(cmd.EventID)
	actorID := strings.TrimSpace(cmd.ActorID)
	if eventID == "" {
		return entities.Attendance{}, domainerrors.ErrInvalidEventID
	}
	if actorID == "" {
		return entities.Attendance{}, domainerrors.ErrForbidden
	}

	event, err := u.Repository.GetEvent(ctx, eventID)
	if err != nil {
		return entities.Attendance{}, err
	}
	if event.Status != entities.StatusApproved {
		return entities.Attendance{}, domainerrors.ErrEventNotJoinable
	}

	now := u.Clock.Now().UTC()
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Attendance{}, err
	}
	payload, err := attendanceEnvelope(outboxID, event, actorID, "joined", now)
	if err != nil {
		return entities.Attendance{}, err
	}

	if err := u.Repository.AddAttendance(ctx, ports.JoinInput{
		EventID:       eventID,
		UserID:        actorID,
		JoinedAt:      now,
		OutboxID:      outboxID,
		OutboxPayload: payload,
	}); err != nil {
		return entities.Attendance{}, err
	}

	logger.Info("event joined",
		"event", "event_joined",
		"module", "campus-events/event-service",
		"layer", "application",
		"event_id", eventID,
		"user_id", actorID,
	)
	return entities.Attendance{EventID: eventID, UserID: actorID, JoinedAt: now}, nil
}

// attendanceEnvelope carries the creator id so downstream consumers can
// notify without a cross-context read.
func attendanceEnvelope(
	envelopeID string,
	event entities.Event,
	userID string,
	action string,
	occurredAt time.Time,
) ([]byte, error) {
	data, err := json.Marshal(map[string]string{
		"event_id":    event.ID,
		"event_title": event.Title,
		"creator_id":  event.CreatedBy,
		"user_id":     userID,
		"action":      action,
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(events.Envelope{
		EventID:       envelopeID,
		EventType:     "events.attendance",
		SourceService: "campus-events/event-service",
		OccurredAt:    occurredAt,
		EntityType:    "event",
		EntityID:      event.ID,
		Data:          data,
	})
}
