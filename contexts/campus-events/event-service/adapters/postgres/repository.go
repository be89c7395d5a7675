package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateEvent(ctx context.Context, event entities.Event) error {
	row := eventModelFromEntity(event)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetEvent(ctx context.Context, id string) (entities.Event, error) {
	var row eventModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Event{}, domainerrors.ErrEventNotFound
		}
		return entities.Event{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListEvents(ctx context.Context, filter ports.EventFilter) ([]entities.Event, error) {
	tx := r.db.WithContext(ctx).Model(&eventModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []eventModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Event, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateEvent(ctx context.Context, id string, update ports.EventUpdate) (entities.Event, error) {
	changes := map[string]any{"updated_at": update.UpdatedAt.UTC()}
	if update.Title != nil {
		changes["title"] = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		changes["description"] = strings.TrimSpace(*update.Description)
	}
	if update.Location != nil {
		changes["location"] = strings.TrimSpace(*update.Location)
	}
	if update.StartsAt != nil {
		changes["starts_at"] = update.StartsAt.UTC()
	}
	if update.EndsAt != nil {
		changes["ends_at"] = update.EndsAt.UTC()
	}
	if update.Capacity != nil {
		changes["capacity"] = *update.Capacity
	}

	result := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("id = ?", strings.TrimSpace(id)).
		Updates(changes)
	if result.Error != nil {
		return entities.Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	return r.GetEvent(ctx, id)
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("event_id = ?", strings.TrimSpace(id)).
			Delete(&attendanceModel{}).
			Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", strings.TrimSpace(id)).Delete(&eventModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrEventNotFound
		}
		return nil
	})
}

func (r *Repository) ChangeStatus(ctx context.Context, input ports.StatusChangeInput) (entities.Event, error) {
	var updated entities.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&eventModel{}).
			Where("id = ? AND status = ?", strings.TrimSpace(input.EventID), string(input.From)).
			Updates(map[string]any{
				"status":     string(input.To),
				"updated_at": input.ChangedAt.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Either the row vanished or another transition won.
			var exists int64
			if err := tx.Model(&eventModel{}).
				Where("id = ?", strings.TrimSpace(input.EventID)).
				Count(&exists).
				Error; err != nil {
				return err
			}
			if exists == 0 {
				return domainerrors.ErrEventNotFound
			}
			return domainerrors.ErrInvalidTransition
		}

		if err := appendOutbox(tx, input.OutboxID, "events.status_changed", input.OutboxPayload, input.ChangedAt); err != nil {
			return err
		}

		var row eventModel
		if err := tx.Where("id = ?", strings.TrimSpace(input.EventID)).First(&row).Error; err != nil {
			return err
		}
		updated = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Event{}, err
	}
	return updated, nil
}

func (r *Repository) AddAttendance(ctx context.Context, input ports.JoinInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := attendanceModel{
			EventID:  strings.TrimSpace(input.EventID),
			UserID:   strings.TrimSpace(input.UserID),
			JoinedAt: input.JoinedAt.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAlreadyJoined
			}
			return err
		}
		return appendOutbox(tx, input.OutboxID, "events.attendance", input.OutboxPayload, input.JoinedAt)
	})
}

func (r *Repository) RemoveAttendance(ctx context.Context, input ports.LeaveInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("event_id = ? AND user_id = ?", strings.TrimSpace(input.EventID), strings.TrimSpace(input.UserID)).
			Delete(&attendanceModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotJoined
		}
		return appendOutbox(tx, input.OutboxID, "events.attendance", input.OutboxPayload, input.LeftAt)
	})
}

func (r *Repository) ListAttendance(ctx context.Context, eventID string) ([]entities.Attendance, error) {
	var rows []attendanceModel
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", strings.TrimSpace(eventID)).
		Order("joined_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Attendance, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Attendance{
			EventID:  row.EventID,
			UserID:   row.UserID,
			JoinedAt: row.JoinedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.ID,
			EventType: row.EventType,
			Payload:   append([]byte(nil), row.Payload...),
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		}).
		Error
}

func appendOutbox(tx *gorm.DB, id string, eventType string, payload []byte, createdAt time.Time) error {
	return tx.Create(&outboxModel{
		ID:        id,
		EventType: eventType,
		Payload:   append([]byte(nil), payload...),
		Status:    outboxStatusPending,
		CreatedAt: createdAt.UTC(),
	}).Error
}

type eventModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	Location    string     `gorm:"column:location"`
	StartsAt    time.Time  `gorm:"column:starts_at"`
	EndsAt      *time.Time `gorm:"column:ends_at"`
	Capacity    int        `gorm:"column:capacity"`
	Status      string     `gorm:"column:status"`
	CreatedBy   string     `gorm:"column:created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (eventModel) TableName() string { return "events" }

func eventModelFromEntity(event entities.Event) eventModel {
	return eventModel{
		ID:          strings.TrimSpace(event.ID),
		Title:       strings.TrimSpace(event.Title),
		Description: strings.TrimSpace(event.Description),
		Location:    strings.TrimSpace(event.Location),
		StartsAt:    event.StartsAt.UTC(),
		EndsAt:      event.EndsAt,
		Capacity:    event.Capacity,
		Status:      string(event.Status),
		CreatedBy:   strings.TrimSpace(event.CreatedBy),
		CreatedAt:   event.CreatedAt.UTC(),
		UpdatedAt:   event.UpdatedAt.UTC(),
	}
}

func (m eventModel) toEntity() entities.Event {
	return entities.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		StartsAt:    m.StartsAt.UTC(),
		EndsAt:      m.EndsAt,
		Capacity:    m.Capacity,
		Status:      entities.EventStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type attendanceModel struct {
	EventID  string    `gorm:"column:event_id;primaryKey"`
	UserID   string    `gorm:"column:user_id;primaryKey"`
	JoinedAt time.Time `gorm:"column:joined_at"`
}

func (attendanceModel) TableName() string { return "event_users" }

type outboxModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "event_outbox" }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
