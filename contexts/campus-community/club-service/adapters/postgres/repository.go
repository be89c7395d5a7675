package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/ports"
)

type clubModel struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	CreatedBy   string `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (clubModel) TableName() string { return "clubs" }

type membershipModel struct {
	ClubID   string `gorm:"primaryKey"`
	UserID   string `gorm:"primaryKey"`
	Role     string `gorm:"not null"`
	JoinedAt time.Time
}

func (membershipModel) TableName() string { return "club_users" }

// Repository persists clubs and membership edges with GORM.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return Repository{DB: db}
}

func (r Repository) CreateClub(ctx context.Context, club entities.Club, creator entities.Membership) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clubRecord(club)).Error; err != nil {
			return err
		}
		return tx.Create(membershipRecord(creator)).Error
	})
	if err != nil {
		return fmt.Errorf("create club: %w", err)
	}
	return nil
}

func (r Repository) GetClub(ctx context.Context, clubID string) (entities.Club, error) {
	var model clubModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", clubID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Club{}, domainerrors.ErrClubNotFound
	}
	if err != nil {
		return entities.Club{}, fmt.Errorf("get club: %w", err)
	}
	return clubEntity(model), nil
}

func (r Repository) ListClubs(ctx context.Context) ([]entities.Club, error) {
	var models []clubModel
	if err := r.DB.WithContext(ctx).Order("created_at DESC, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	clubs := make([]entities.Club, 0, len(models))
	for _, model := range models {
		clubs = append(clubs, clubEntity(model))
	}
	return clubs, nil
}

func (r Repository) UpdateClub(ctx context.Context, clubID string, update ports.ClubUpdate) (entities.Club, error) {
	changes := map[string]any{"updated_at": update.UpdatedAt.UTC()}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}

	result := r.DB.WithContext(ctx).Model(&clubModel{}).Where("id = ?", clubID).Updates(changes)
	if result.Error != nil {
		return entities.Club{}, fmt.Errorf("update club: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Club{}, domainerrors.ErrClubNotFound
	}
	return r.GetClub(ctx, clubID)
}

func (r Repository) DeleteClub(ctx context.Context, clubID string) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", clubID).Delete(&membershipModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", clubID).Delete(&clubModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrClubNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrClubNotFound) {
			return err
		}
		return fmt.Errorf("delete club: %w", err)
	}
	return nil
}

func (r Repository) AddMember(ctx context.Context, membership entities.Membership) error {
	err := r.DB.WithContext(ctx).Create(membershipRecord(membership)).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyMember
		}
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

func (r Repository) RemoveMember(ctx context.Context, clubID string, userID string) error {
	result := r.DB.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Delete(&membershipModel{})
	if result.Error != nil {
		return fmt.Errorf("remove member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotMember
	}
	return nil
}

func (r Repository) ListMembers(ctx context.Context, clubID string) ([]entities.Membership, error) {
	var models []membershipModel
	err := r.DB.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("joined_at, user_id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	members := make([]entities.Membership, 0, len(models))
	for _, model := range models {
		members = append(members, entities.Membership{
			ClubID:   model.ClubID,
			UserID:   model.UserID,
			Role:     model.Role,
			JoinedAt: model.JoinedAt,
		})
	}
	return members, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func clubRecord(club entities.Club) *clubModel {
	return &clubModel{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		CreatedBy:   club.CreatedBy,
		CreatedAt:   club.CreatedAt.UTC(),
		UpdatedAt:   club.UpdatedAt.UTC(),
	}
}

func clubEntity(model clubModel) entities.Club {
	return entities.Club{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedBy:   model.CreatedBy,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func membershipRecord(membership entities.Membership) *membershipModel {
	return &membershipModel{
		ClubID:   membership.ClubID,
		UserID:   membership.UserID,
		Role:     membership.Role,
		JoinedAt: membership.JoinedAt.UTC(),
	}
}
