package httpserver

import (
	"errors"
	"net/http"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application/commands"
	eventerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	eventhttp "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/transport/http"
)

func writeEventDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventerrors.ErrEventNotFound),
		errors.Is(err, eventerrors.ErrNotJoined):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, eventerrors.ErrInvalidEventID),
		errors.Is(err, eventerrors.ErrInvalidInput),
		errors.Is(err, eventerrors.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, eventerrors.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, eventerrors.ErrInvalidTransition),
		errors.Is(err, eventerrors.ErrEventNotJoinable),
		errors.Is(err, eventerrors.ErrAlreadyJoined):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.ListEventsHandler(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.GetEventHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req eventhttp.CreateEventRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.events.Handler.CreateEventHandler(r.Context(), actor.SubjectID, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req eventhttp.UpdateEventRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.events.Handler.UpdateEventHandler(r.Context(), r.PathValue("id"), actor.SubjectID, actor.Admin, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.events.Handler.DeleteEventHandler(r.Context(), r.PathValue("id"), actor.SubjectID, actor.Admin); err != nil {
		writeEventDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleApproveEvent(w http.ResponseWriter, r *http.Request) {
	s.handleModerateEvent(w, r, commands.ActionApprove)
}

func (s *Server) handleRejectEvent(w http.ResponseWriter, r *http.Request) {
	s.handleModerateEvent(w, r, commands.ActionReject)
}

func (s *Server) handleCancelEvent(w http.ResponseWriter, r *http.Request) {
	s.handleModerateEvent(w, r, commands.ActionCancel)
}

// handleModerateEvent is shared by approve/reject/cancel. Approve and reject
// require ADMIN; cancel is open to the creator, so the admin check lives in
// the command.
func (s *Server) handleModerateEvent(w http.ResponseWriter, r *http.Request, action commands.ModerationAction) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.events.Handler.ModerateEventHandler(r.Context(), r.PathValue("id"), actor.SubjectID, actor.Admin, action)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleJoinEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.events.Handler.JoinEventHandler(r.Context(), r.PathValue("id"), actor.SubjectID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLeaveEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.events.Handler.LeaveEventHandler(r.Context(), r.PathValue("id"), actor.SubjectID); err != nil {
		writeEventDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListAttendees(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.ListAttendeesHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
