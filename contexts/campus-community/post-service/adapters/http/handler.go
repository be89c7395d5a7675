package httpadapter

import (
	"context"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/entities"
	httptransport "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/transport/http"
)

type Handler struct {
	Service application.Service
}

func (h Handler) ListPostsHandler(ctx context.Context) (httptransport.ListPostsResponse, error) {
	posts, err := h.Service.ListPosts(ctx)
	if err != nil {
		return httptransport.ListPostsResponse{}, err
	}
	dtos := make([]httptransport.PostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, postDTO(post))
	}
	return httptransport.ListPostsResponse{Posts: dtos}, nil
}

func (h Handler) GetPostHandler(ctx context.Context, postID string) (httptransport.PostDTO, error) {
	post, err := h.Service.GetPost(ctx, postID)
	if err != nil {
		return httptransport.PostDTO{}, err
	}
	return postDTO(post), nil
}

func (h Handler) CreatePostHandler(ctx context.Context, actorID string, request httptransport.CreatePostRequest) (httptransport.PostDTO, error) {
	post, err := h.Service.CreatePost(ctx, application.CreatePostInput{
		ActorID: actorID,
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		return httptransport.PostDTO{}, err
	}
	return postDTO(post), nil
}

func (h Handler) UpdatePostHandler(
	ctx context.Context,
	postID string,
	actorID string,
	actorAdmin bool,
	request httptransport.UpdatePostRequest,
) (httptransport.PostDTO, error) {
	post, err := h.Service.UpdatePost(ctx, application.UpdatePostInput{
		PostID:     postID,
		ActorID:    actorID,
		ActorAdmin: actorAdmin,
		Title:      request.Title,
		Content:    request.Content,
	})
	if err != nil {
		return httptransport.PostDTO{}, err
	}
	return postDTO(post), nil
}

func (h Handler) DeletePostHandler(ctx context.Context, postID string, actorID string, actorAdmin bool) error {
	return h.Service.DeletePost(ctx, postID, actorID, actorAdmin)
}

func postDTO(post entities.Post) httptransport.PostDTO {
	return httptransport.PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedBy: post.CreatedBy,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
