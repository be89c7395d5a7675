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
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/services"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
	"github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

// ModerationAction selects the target transition.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReject  ModerationAction = "reject"
	ActionCancel  ModerationAction = "cancel"
)

// ModerateEventCommand applies one status transition. Approve/reject are
// admin-only; cancel is open to the creator as well.
type ModerateEventCommand struct {
	EventID    string
	ActorID    string
	ActorAdmin bool
	Action     ModerationAction
}

// ModerateEventUseCase changes event status, notifies the creator, and
// appends an outbox row inside the same store transaction.
type ModerateEventUseCase struct {
	Repository  ports.Repository
	Notifier    ports.Notifier
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u ModerateEventUseCase) Execute(ctx context.Context, cmd ModerateEventCommand) (entities.Event, error) {
	logger := application.ResolveLogger(u.Logger)

	eventID := strings.TrimSpace(cmd.EventID)
	if eventID == "" {
		return entities.Event{}, domainerrors.ErrInvalidEventID
	}

	event, err := u.Repository.GetEvent(ctx, eventID)
	if err != nil {
		return entities.Event{}, err
	}

	var target entities.EventStatus
	switch cmd.Action {
	case ActionApprove:
		target = entities.StatusApproved
	case ActionReject:
		target = entities.StatusRejected
	case ActionCancel:
		target = entities.StatusCancelled
	default:
		return entities.Event{}, domainerrors.ErrInvalidInput
	}

	if cmd.Action == ActionCancel {
		if !cmd.ActorAdmin && event.CreatedBy != strings.TrimSpace(cmd.ActorID) {
			return entities.Event{}, domainerrors.ErrForbidden
		}
	} else if !cmd.ActorAdmin {
		return entities.Event{}, domainerrors.ErrForbidden
	}

	if !services.CanTransition(event.Status, target) {
		return entities.Event{}, domainerrors.ErrInvalidTransition
	}

	now := u.Clock.Now().UTC()
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Event{}, err
	}
	payload, err := statusChangedEnvelope(outboxID, event, target, cmd.ActorID, now)
	if err != nil {
		return entities.Event{}, err
	}

	updated, err := u.Repository.ChangeStatus(ctx, ports.StatusChangeInput{
		EventID:       eventID,
		From:          event.Status,
		To:            target,
		ChangedBy:     strings.TrimSpace(cmd.ActorID),
		ChangedAt:     now,
		OutboxID:      outboxID,
		OutboxPayload: payload,
	})
	if err != nil {
		return entities.Event{}, err
	}

	if err := u.Notifier.RecordNotification(ctx, moderationNotice(updated, cmd.Action)); err != nil {
		logger.Error("moderation notification failed",
			"event", "event_moderation_notify_failed",
			"module", "campus-events/event-service",
			"layer", "application",
			"event_id", eventID,
			"error", err.Error(),
		)
		return entities.Event{}, err
	}

	logger.Info("event status changed",
		"event", "event_status_changed",
		"module", "campus-events/event-service",
		"layer", "application",
		"event_id", eventID,
		"from", string(event.Status),
		"to", string(target),
		"actor_id", cmd.ActorID,
	)
	return updated, nil
}

func moderationNotice(event entities.Event, action ModerationAction) ports.NotificationInput {
	switch action {
	case ActionApprove:
		return ports.NotificationInput{
			UserID:  event.CreatedBy,
			Type:    "success",
			Title:   "Event approved",
			Message: "Your event \"" + event.Title + "\" has been approved.",
		}
	case ActionReject:
		return ports.NotificationInput{
			UserID:  event.CreatedBy,
			Type:    "error",
			Title:   "Event rejected",
			Message: "Your event \"" + event.Title + "\" has been rejected.",
		}
	default:
		return ports.NotificationInput{
			UserID:  event.CreatedBy,
			Type:    "warning",
			Title:   "Event cancelled",
			Message: "Your event \"" + event.Title + "\" has been cancelled.",
		}
	}
}

func statusChangedEnvelope(
	envelopeID string,
	event entities.Event,
	target entities.EventStatus,
	actorID string,
	occurredAt time.Time,
) ([]byte, error) {
	data, err := json.Marshal(map[string]string{
		"event_id": event.ID,
		"from":     string(event.Status),
		"to":       string(target),
		"actor_id": strings.TrimSpace(actorID),
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(events.Envelope{
		EventID:       envelopeID,
		EventType:     "events.status_changed",
		SourceService: "campus-events/event-service",
		OccurredAt:    occurredAt,
		EntityType:    "event",
		EntityID:      event.ID,
		Data:          data,
	})
}
