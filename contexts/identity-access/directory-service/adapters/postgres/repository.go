package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) GetUser(ctx context.Context, id string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ProvisionUser(ctx context.Context, input ports.ProvisionUserInput) (entities.User, bool, error) {
	row := userModel{
		ID:        strings.TrimSpace(input.ID),
		Email:     strings.TrimSpace(input.Email),
		Name:      strings.TrimSpace(input.Name),
		Role:      string(entities.RoleUser),
		CreatedAt: input.CreatedAt.UTC(),
		UpdatedAt: input.CreatedAt.UTC(),
	}

	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		if isUniqueViolation(createResult.Error) {
			return entities.User{}, false, domainerrors.ErrEmailTaken
		}
		return entities.User{}, false, createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return row.toEntity(), true, nil
	}

	// Lost the insert race; read the surviving record.
	existing, err := r.GetUser(ctx, row.ID)
	if err != nil {
		return entities.User{}, false, err
	}
	return existing, false, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateUser(ctx context.Context, id string, update ports.UserUpdate) (entities.User, error) {
	changes := map[string]any{"updated_at": update.UpdatedAt.UTC()}
	if update.Name != nil {
		changes["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Avatar != nil {
		changes["avatar"] = strings.TrimSpace(*update.Avatar)
	}
	if update.Role != nil {
		changes["role"] = string(*update.Role)
	}

	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", strings.TrimSpace(id)).
		Updates(changes)
	if result.Error != nil {
		return entities.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return r.GetUser(ctx, id)
}

type userModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	Avatar    string    `gorm:"column:avatar"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Avatar:    m.Avatar,
		Role:      entities.Role(m.Role),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
