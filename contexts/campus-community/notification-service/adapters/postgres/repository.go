package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/entities"
)

type notificationModel struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index;not null"`
	Type      string `gorm:"not null"`
	Title     string `gorm:"not null"`
	Message   string
	Read      bool
	CreatedAt time.Time
}

func (notificationModel) TableName() string { return "notifications" }

type processedEventModel struct {
	ConsumerGroup string `gorm:"primaryKey"`
	EventID       string `gorm:"primaryKey"`
	ProcessedAt   time.Time
}

func (processedEventModel) TableName() string { return "notification_processed_events" }

// Repository persists notifications with GORM. It also implements the
// consumer dedup store via an insert-if-absent on the processed-events table.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return Repository{DB: db}
}

func (r Repository) CreateNotification(ctx context.Context, notification entities.Notification) error {
	record := notificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt.UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r Repository) ListForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	var models []notificationModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	items := make([]entities.Notification, 0, len(models))
	for _, model := range models {
		items = append(items, notificationEntity(model))
	}
	return items, nil
}

func (r Repository) MarkRead(ctx context.Context, notificationID string, userID string) (entities.Notification, error) {
	result := r.DB.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return entities.Notification{}, fmt.Errorf("mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Notification{}, domainerrors.ErrNotificationNotFound
	}

	var model notificationModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", notificationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Notification{}, domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return entities.Notification{}, fmt.Errorf("reload notification: %w", err)
	}
	return notificationEntity(model), nil
}

func (r Repository) DeleteNotification(ctx context.Context, notificationID string, userID string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&notificationModel{})
	if result.Error != nil {
		return fmt.Errorf("delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func (r Repository) MarkProcessed(ctx context.Context, consumerGroup string, eventID string) (bool, error) {
	record := processedEventModel{
		ConsumerGroup: consumerGroup,
		EventID:       eventID,
		ProcessedAt:   time.Now().UTC(),
	}
	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "consumer_group"}, {Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&record)
	if result.Error != nil {
		return false, fmt.Errorf("mark event processed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func notificationEntity(model notificationModel) entities.Notification {
	return entities.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		Type:      model.Type,
		Title:     model.Title,
		Message:   model.Message,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}
