package bootstrap

import (
	"context"

	notificationapplication "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/application"
	eventports "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// moderationNotifier adapts the notification service onto the event module's
// Notifier port, keeping the two contexts decoupled at the type level.
type moderationNotifier struct {
	service notificationapplication.Service
}

func (n moderationNotifier) RecordNotification(ctx context.Context, input eventports.NotificationInput) error {
	_, err := n.service.Record(ctx, notificationapplication.RecordInput{
		UserID:  input.UserID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
	})
	return err
}
