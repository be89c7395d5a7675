package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/ports"
)

// Store is an in-memory Repository, Clock and IDGenerator for tests and
// local development.
type Store struct {
	mu    sync.RWMutex
	posts map[string]entities.Post
}

func NewStore() *Store {
	return &Store{posts: make(map[string]entities.Post)}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreatePost(_ context.Context, post entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = post
	return nil
}

func (s *Store) GetPost(_ context.Context, postID string) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[postID]
	if !ok {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return post, nil
}

func (s *Store) ListPosts(_ context.Context) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]entities.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *Store) UpdatePost(_ context.Context, postID string, update ports.PostUpdate) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	post.UpdatedAt = update.UpdatedAt
	s.posts[postID] = post
	return post, nil
}

func (s *Store) DeletePost(_ context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return domainerrors.ErrPostNotFound
	}
	delete(s.posts, postID)
	return nil
}
