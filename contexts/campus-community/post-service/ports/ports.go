package ports

import (
	"context"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PostUpdate carries partial changes; nil fields are left untouched.
type PostUpdate struct {
	Title     *string
	Content   *string
	UpdatedAt time.Time
}

type Repository interface {
	CreatePost(ctx context.Context, post entities.Post) error
	GetPost(ctx context.Context, postID string) (entities.Post, error)
	ListPosts(ctx context.Context) ([]entities.Post, error)
	UpdatePost(ctx context.Context, postID string, update PostUpdate) (entities.Post, error)
	DeletePost(ctx context.Context, postID string) error
}
