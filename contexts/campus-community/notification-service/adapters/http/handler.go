package httpadapter

import (
	"context"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/entities"
	httptransport "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/transport/http"
)

type Handler struct {
	Service application.Service
}

func (h Handler) ListNotificationsHandler(ctx context.Context, userID string) (httptransport.ListNotificationsResponse, error) {
	notifications, err := h.Service.ListForUser(ctx, userID)
	if err != nil {
		return httptransport.ListNotificationsResponse{}, err
	}
	dtos := make([]httptransport.NotificationDTO, 0, len(notifications))
	for _, notification := range notifications {
		dtos = append(dtos, notificationDTO(notification))
	}
	return httptransport.ListNotificationsResponse{Notifications: dtos}, nil
}

func (h Handler) MarkReadHandler(ctx context.Context, notificationID string, userID string) (httptransport.NotificationDTO, error) {
	notification, err := h.Service.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return httptransport.NotificationDTO{}, err
	}
	return notificationDTO(notification), nil
}

func (h Handler) DeleteNotificationHandler(ctx context.Context, notificationID string, userID string) error {
	return h.Service.Delete(ctx, notificationID, userID)
}

func notificationDTO(notification entities.Notification) httptransport.NotificationDTO {
	return httptransport.NotificationDTO{
		ID:        notification.ID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}
