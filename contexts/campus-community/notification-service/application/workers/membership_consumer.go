package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/ports"
	"github.com/chetanck03/Terminal-Tribe/internal/shared/events"
)

const (
	attendanceTopic = "events.attendance"
	consumerGroup   = "notification-service.membership-activity"
)

type attendancePayload struct {
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	CreatorID  string `json:"creator_id"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
}

// MembershipActivityConsumer notifies event creators when someone joins
// their event. Dedup keyed on envelope id keeps redeliveries idempotent.
type MembershipActivityConsumer struct {
	Service    application.Service
	Dedup      ports.DedupStore
	Subscriber ports.Subscriber
	Logger     *slog.Logger
}

func (c MembershipActivityConsumer) Start(ctx context.Context) error {
	return c.Subscriber.Subscribe(ctx, attendanceTopic, consumerGroup, c.Handle)
}

func (c MembershipActivityConsumer) Handle(ctx context.Context, envelope events.Envelope) error {
	logger := application.ResolveLogger(c.Logger)

	fresh, err := c.Dedup.MarkProcessed(ctx, consumerGroup, envelope.EventID)
	if err != nil {
		return fmt.Errorf("dedup check: %w", err)
	}
	if !fresh {
		logger.Info("attendance event already processed",
			"event", "membership_consumer_duplicate",
			"module", "campus-community/notification-service",
			"layer", "application",
			"event_id", envelope.EventID,
		)
		return nil
	}

	var payload attendancePayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return fmt.Errorf("decode attendance payload: %w", err)
	}
	if payload.Action != "joined" {
		return nil
	}
	// Joining your own event is legal but not newsworthy.
	if payload.CreatorID == "" || payload.CreatorID == payload.UserID {
		return nil
	}

	_, err = c.Service.Record(ctx, application.RecordInput{
		UserID:  payload.CreatorID,
		Type:    entities.TypeInfo,
		Title:   "New attendee",
		Message: fmt.Sprintf("Someone joined your event %q.", payload.EventTitle),
	})
	if err != nil {
		return fmt.Errorf("record join notification: %w", err)
	}

	logger.Info("join notification recorded",
		"event", "membership_consumer_notified",
		"module", "campus-community/notification-service",
		"layer", "application",
		"event_id", envelope.EventID,
		"creator_id", payload.CreatorID,
		"joined_user_id", payload.UserID,
	)
	return nil
}
