package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/ports"
)

type postModel struct {
	ID        string `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string
	CreatedBy string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (postModel) TableName() string { return "posts" }

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return Repository{DB: db}
}

func (r Repository) CreatePost(ctx context.Context, post entities.Post) error {
	record := postModel{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedBy: post.CreatedBy,
		CreatedAt: post.CreatedAt.UTC(),
		UpdatedAt: post.UpdatedAt.UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r Repository) GetPost(ctx context.Context, postID string) (entities.Post, error) {
	var model postModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return entities.Post{}, fmt.Errorf("get post: %w", err)
	}
	return postEntity(model), nil
}

func (r Repository) ListPosts(ctx context.Context) ([]entities.Post, error) {
	var models []postModel
	if err := r.DB.WithContext(ctx).Order("created_at DESC, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	posts := make([]entities.Post, 0, len(models))
	for _, model := range models {
		posts = append(posts, postEntity(model))
	}
	return posts, nil
}

func (r Repository) UpdatePost(ctx context.Context, postID string, update ports.PostUpdate) (entities.Post, error) {
	changes := map[string]any{"updated_at": update.UpdatedAt.UTC()}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Content != nil {
		changes["content"] = *update.Content
	}

	result := r.DB.WithContext(ctx).Model(&postModel{}).Where("id = ?", postID).Updates(changes)
	if result.Error != nil {
		return entities.Post{}, fmt.Errorf("update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return r.GetPost(ctx, postID)
}

func (r Repository) DeletePost(ctx context.Context, postID string) error {
	result := r.DB.WithContext(ctx).Where("id = ?", postID).Delete(&postModel{})
	if result.Error != nil {
		return fmt.Errorf("delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}
	return nil
}

func postEntity(model postModel) entities.Post {
	return entities.Post{
		ID:        model.ID,
		Title:     model.Title,
		Content:   model.Content,
		CreatedBy: model.CreatedBy,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
