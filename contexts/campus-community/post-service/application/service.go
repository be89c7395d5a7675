package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/ports"
)

// Service implements post CRUD with ownership checks.
type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CreatePostInput struct {
	ActorID string
	Title   string
	Content string
}

type UpdatePostInput struct {
	PostID     string
	ActorID    string
	ActorAdmin bool
	Title      *string
	Content    *string
}

func (s Service) CreatePost(ctx context.Context, input CreatePostInput) (entities.Post, error) {
	input.ActorID = strings.TrimSpace(input.ActorID)
	input.Title = strings.TrimSpace(input.Title)
	if input.ActorID == "" || input.Title == "" {
		return entities.Post{}, domainerrors.ErrInvalidInput
	}

	postID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Post{}, err
	}
	now := s.Clock.Now()
	post := entities.Post{
		ID:        postID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedBy: input.ActorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreatePost(ctx, post); err != nil {
		return entities.Post{}, err
	}

	ResolveLogger(s.Logger).Info("post created",
		"event", "post_created",
		"module", "campus-community/post-service",
		"layer", "application",
		"post_id", post.ID,
		"created_by", post.CreatedBy,
	)
	return post, nil
}

func (s Service) GetPost(ctx context.Context, postID string) (entities.Post, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return entities.Post{}, domainerrors.ErrInvalidPostID
	}
	return s.Repo.GetPost(ctx, postID)
}

func (s Service) ListPosts(ctx context.Context) ([]entities.Post, error) {
	return s.Repo.ListPosts(ctx)
}

func (s Service) UpdatePost(ctx context.Context, input UpdatePostInput) (entities.Post, error) {
	input.PostID = strings.TrimSpace(input.PostID)
	input.ActorID = strings.TrimSpace(input.ActorID)
	if input.PostID == "" {
		return entities.Post{}, domainerrors.ErrInvalidPostID
	}
	if input.Title == nil && input.Content == nil {
		return entities.Post{}, domainerrors.ErrInvalidInput
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return entities.Post{}, domainerrors.ErrInvalidInput
	}

	post, err := s.Repo.GetPost(ctx, input.PostID)
	if err != nil {
		return entities.Post{}, err
	}
	if post.CreatedBy != input.ActorID && !input.ActorAdmin {
		return entities.Post{}, domainerrors.ErrForbidden
	}

	return s.Repo.UpdatePost(ctx, input.PostID, ports.PostUpdate{
		Title:     input.Title,
		Content:   input.Content,
		UpdatedAt: s.Clock.Now(),
	})
}

func (s Service) DeletePost(ctx context.Context, postID string, actorID string, actorAdmin bool) error {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return domainerrors.ErrInvalidPostID
	}
	post, err := s.Repo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.CreatedBy != strings.TrimSpace(actorID) && !actorAdmin {
		return domainerrors.ErrForbidden
	}
	if err := s.Repo.DeletePost(ctx, postID); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("post deleted",
		"event", "post_deleted",
		"module", "campus-community/post-service",
		"layer", "application",
		"post_id", postID,
		"actor_id", actorID,
	)
	return nil
}
