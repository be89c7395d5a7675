package queries

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

type GetEventUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetEventUseCase) Execute(ctx context.Context, eventID string) (entities.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return entities.Event{}, domainerrors.ErrInvalidEventID
	}
	return u.Repository.GetEvent(ctx, strings.TrimSpace(eventID))
}
