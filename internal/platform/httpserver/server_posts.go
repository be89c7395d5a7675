package httpserver

import (
	"errors"
	"net/http"

	posterrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/domain/errors"
	posthttp "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/transport/http"
)

func writePostDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posterrors.ErrPostNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, posterrors.ErrInvalidPostID),
		errors.Is(err, posterrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, posterrors.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.posts.Handler.ListPostsHandler(r.Context())
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.posts.Handler.GetPostHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req posthttp.CreatePostRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.posts.Handler.CreatePostHandler(r.Context(), actor.SubjectID, req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req posthttp.UpdatePostRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.posts.Handler.UpdatePostHandler(r.Context(), r.PathValue("id"), actor.SubjectID, actor.Admin, req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.posts.Handler.DeletePostHandler(r.Context(), r.PathValue("id"), actor.SubjectID, actor.Admin); err != nil {
		writePostDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
