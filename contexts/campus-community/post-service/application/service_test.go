package application

import (
	"context"
	"errors"
	"testing"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/adapters/memory"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/errors"
)

func newService(store *memory.Store) Service {
	return Service{Repo: store, Clock: store, IDGenerator: store}
}

func TestCreatePostRequiresTitleAndActor(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	if _, err := service.CreatePost(context.Background(), CreatePostInput{ActorID: "u-1"}); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
	if _, err := service.CreatePost(context.Background(), CreatePostInput{Title: "Hello"}); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing actor, got %v", err)
	}

	post, err := service.CreatePost(context.Background(), CreatePostInput{ActorID: "u-1", Title: "Hello", Content: "First!"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.CreatedBy != "u-1" {
		t.Fatalf("expected author recorded, got %q", post.CreatedBy)
	}
}

func TestUpdatePostOwnershipChecks(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	post, err := service.CreatePost(context.Background(), CreatePostInput{ActorID: "author-1", Title: "Hello"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "Edited"
	_, err = service.UpdatePost(context.Background(), UpdatePostInput{PostID: post.ID, ActorID: "stranger", Title: &title})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := service.UpdatePost(context.Background(), UpdatePostInput{PostID: post.ID, ActorID: "author-1", Title: &title})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Edited" {
		t.Fatalf("expected edited title, got %q", updated.Title)
	}

	// Admins can edit posts they do not own.
	content := "moderated"
	if _, err := service.UpdatePost(context.Background(), UpdatePostInput{PostID: post.ID, ActorID: "mod-1", ActorAdmin: true, Content: &content}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestUpdatePostRejectsEmptyPatch(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	post, err := service.CreatePost(context.Background(), CreatePostInput{ActorID: "author-1", Title: "Hello"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = service.UpdatePost(context.Background(), UpdatePostInput{PostID: post.ID, ActorID: "author-1"})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeletePostOwnership(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)
	post, err := service.CreatePost(context.Background(), CreatePostInput{ActorID: "author-1", Title: "Hello"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.DeletePost(context.Background(), post.ID, "stranger", false); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := service.DeletePost(context.Background(), post.ID, "author-1", false); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := service.GetPost(context.Background(), post.ID); !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
