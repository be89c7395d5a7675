package queries

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// ListEventsQuery optionally narrows by status; raw values are validated here.
type ListEventsQuery struct {
	Status string
}

type ListEventsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) ([]entities.Event, error) {
	filter := ports.EventFilter{}
	if strings.TrimSpace(query.Status) != "" {
		status, ok := entities.ParseStatus(query.Status)
		if !ok {
			return nil, domainerrors.ErrInvalidStatus
		}
		filter.Status = status
	}
	return u.Repository.ListEvents(ctx, filter)
}
