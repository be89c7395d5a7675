package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/ports"
)

// Service records and serves per-user notifications. Record is called both
// synchronously (event moderation) and from the membership consumer.
type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type RecordInput struct {
	UserID  string
	Type    string
	Title   string
	Message string
}

func (s Service) Record(ctx context.Context, input RecordInput) (entities.Notification, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Type = strings.TrimSpace(input.Type)
	input.Title = strings.TrimSpace(input.Title)
	if input.UserID == "" || input.Title == "" {
		return entities.Notification{}, domainerrors.ErrInvalidInput
	}
	if input.Type == "" {
		input.Type = entities.TypeInfo
	}

	notificationID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Notification{}, err
	}
	notification := entities.Notification{
		ID:        notificationID,
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		Read:      false,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Repo.CreateNotification(ctx, notification); err != nil {
		return entities.Notification{}, err
	}

	ResolveLogger(s.Logger).Info("notification recorded",
		"event", "notification_recorded",
		"module", "campus-community/notification-service",
		"layer", "application",
		"notification_id", notification.ID,
		"user_id", notification.UserID,
		"type", notification.Type,
	)
	return notification, nil
}

func (s Service) ListForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return s.Repo.ListForUser(ctx, userID)
}

func (s Service) MarkRead(ctx context.Context, notificationID string, userID string) (entities.Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	userID = strings.TrimSpace(userID)
	if notificationID == "" {
		return entities.Notification{}, domainerrors.ErrInvalidNotificationID
	}
	if userID == "" {
		return entities.Notification{}, domainerrors.ErrInvalidInput
	}
	return s.Repo.MarkRead(ctx, notificationID, userID)
}

func (s Service) Delete(ctx context.Context, notificationID string, userID string) error {
	notificationID = strings.TrimSpace(notificationID)
	userID = strings.TrimSpace(userID)
	if notificationID == "" {
		return domainerrors.ErrInvalidNotificationID
	}
	if userID == "" {
		return domainerrors.ErrInvalidInput
	}
	return s.Repo.DeleteNotification(ctx, notificationID, userID)
}
