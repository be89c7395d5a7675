package httpserver

import (
	"errors"
	"net/http"

	notificationerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/errors"
)

func writeNotificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notificationerrors.ErrNotificationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, notificationerrors.ErrInvalidNotificationID),
		errors.Is(err, notificationerrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.notifications.Handler.ListNotificationsHandler(r.Context(), actor.SubjectID)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.notifications.Handler.MarkReadHandler(r.Context(), r.PathValue("id"), actor.SubjectID)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if err := s.notifications.Handler.DeleteNotificationHandler(r.Context(), r.PathValue("id"), actor.SubjectID); err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
