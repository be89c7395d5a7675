package queries

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// ListAttendeesUseCase returns the attendance edges of one event.
type ListAttendeesUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListAttendeesUseCase) Execute(ctx context.Context, eventID string) ([]entities.Attendance, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, domainerrors.ErrInvalidEventID
	}
	if _, err := u.Repository.GetEvent(ctx, strings.TrimSpace(eventID)); err != nil {
		return nil, err
	}
	return u.Repository.ListAttendance(ctx, strings.TrimSpace(eventID))
}
