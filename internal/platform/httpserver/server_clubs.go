package httpserver

import (
	"errors"
	"net/http"

	cluberrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/domain/errors"
	clubhttp "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/transport/http"
)

func writeClubDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cluberrors.ErrClubNotFound),
		errors.Is(err, cluberrors.ErrNotMember):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cluberrors.ErrInvalidClubID),
		errors.Is(err, cluberrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, cluberrors.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, cluberrors.ErrAlreadyMember),
		errors.Is(err, cluberrors.ErrCreatorCannotLeave):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleListClubs(w http.ResponseWriter, r *http.Request) {
	resp, err := s.clubs.Handler.ListClubsHandler(r.Context())
	if err != nil {
		writeClubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetClub(w http.ResponseWriter, r *http.Request) {
	resp, err := s.clubs.Handler.GetClubHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeClubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateClub(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req clubhttp.CreateClubRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.clubs.Handler.CreateClubHandler(r.Context(), actor.SubjectID, req)
	if err != nil {
		writeClubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateClub(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req clubhttp.UpdateClubRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.clubs.Handler.UpdateClubHandler(r.Context(), r.PathValue("id"), actor.SubjectID, actor.Admin, req)
	if err != nil {
		writeClubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteClub(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.clubs.Handler.DeleteClubHandler(r.Context(), r.PathValue("id"), actor.SubjectID, actor.Admin); err != nil {
		writeClubDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleJoinClub(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.clubs.Handler.JoinClubHandler(r.Context(), r.PathValue("id"), actor.SubjectID)
	if err != nil {
		writeClubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLeaveClub(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.clubs.Handler.LeaveClubHandler(r.Context(), r.PathValue("id"), actor.SubjectID); err != nil {
		writeClubDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
