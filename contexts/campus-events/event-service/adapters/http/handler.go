package httpadapter

import (
	"context"
	"log/slog"

	application "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application/commands"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application/queries"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	httptransport "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	ListEvents    queries.ListEventsUseCase
	GetEvent      queries.GetEventUseCase
	ListAttendees queries.ListAttendeesUseCase
	CreateEvent   commands.CreateEventUseCase
	UpdateEvent   commands.UpdateEventUseCase
	DeleteEvent   commands.DeleteEventUseCase
	ModerateEvent commands.ModerateEventUseCase
	JoinEvent     commands.JoinEventUseCase
	LeaveEvent    commands.LeaveEventUseCase
	Logger        *slog.Logger
}

func (h Handler) ListEventsHandler(ctx context.Context, status string) (httptransport.ListEventsResponse, error) {
	items, err := h.ListEvents.Execute(ctx, queries.ListEventsQuery{Status: status})
	if err != nil {
		return httptransport.ListEventsResponse{}, err
	}
	dtos := make([]httptransport.EventDTO, 0, len(items))
	for _, event := range items {
		dtos = append(dtos, eventDTO(event))
	}
	return httptransport.ListEventsResponse{Events: dtos}, nil
}

func (h Handler) GetEventHandler(ctx context.Context, eventID string) (httptransport.EventDTO, error) {
	event, err := h.GetEvent.Execute(ctx, eventID)
	if err != nil {
		return httptransport.EventDTO{}, err
	}
	return eventDTO(event), nil
}

func (h Handler) CreateEventHandler(
	ctx context.Context,
	actorID string,
	request httptransport.CreateEventRequest,
) (httptransport.EventDTO, error) {
	event, err := h.CreateEvent.Execute(ctx, commands.CreateEventCommand{
		ActorID:     actorID,
		Title:       request.Title,
		Description: request.Description,
		Location:    request.Location,
		StartsAt:    request.StartsAt,
		EndsAt:      request.EndsAt,
		Capacity:    request.Capacity,
	})
	if err != nil {
		return httptransport.EventDTO{}, err
	}
	return eventDTO(event), nil
}

func (h Handler) UpdateEventHandler(
	ctx context.Context,
	eventID string,
	actorID string,
	actorAdmin bool,
	request httptransport.UpdateEventRequest,
) (httptransport.EventDTO, error) {
	event, err := h.UpdateEvent.Execute(ctx, commands.UpdateEventCommand{
		EventID:     eventID,
		ActorID:     actorID,
		ActorAdmin:  actorAdmin,
		Title:       request.Title,
		Description: request.Description,
		Location:    request.Location,
		StartsAt:    request.StartsAt,
		EndsAt:      request.EndsAt,
		Capacity:    request.Capacity,
	})
	if err != nil {
		return httptransport.EventDTO{}, err
	}
	return eventDTO(event), nil
}

func (h Handler) DeleteEventHandler(ctx context.Context, eventID string, actorID string, actorAdmin bool) error {
	return h.DeleteEvent.Execute(ctx, commands.DeleteEventCommand{
		EventID:    eventID,
		ActorID:    actorID,
		ActorAdmin: actorAdmin,
	})
}

// ModerateEventHandler drives approve/reject/cancel transitions.
func (h Handler) ModerateEventHandler(
	ctx context.Context,
	eventID string,
	actorID string,
	actorAdmin bool,
	action commands.ModerationAction,
) (httptransport.EventDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http event moderation received",
		"event", "event_http_moderation_received",
		"module", "campus-events/event-service",
		"layer", "transport",
		"event_id", eventID,
		"actor_id", actorID,
		"action", string(action),
	)

	event, err := h.ModerateEvent.Execute(ctx, commands.ModerateEventCommand{
		EventID:    eventID,
		ActorID:    actorID,
		ActorAdmin: actorAdmin,
		Action:     action,
	})
	if err != nil {
		logger.Error("http event moderation failed",
			"event", "event_http_moderation_failed",
			"module", "campus-events/event-service",
			"layer", "transport",
			"event_id", eventID,
			"actor_id", actorID,
			"action", string(action),
			"error", err.Error(),
		)
		return httptransport.EventDTO{}, err
	}
	return eventDTO(event), nil
}

func (h Handler) JoinEventHandler(ctx context.Context, eventID string, actorID string) (httptransport.JoinEventResponse, error) {
	edge, err := h.JoinEvent.Execute(ctx, commands.JoinEventCommand{EventID: eventID, ActorID: actorID})
	if err != nil {
		return httptransport.JoinEventResponse{}, err
	}
	return httptransport.JoinEventResponse{
		EventID:  edge.EventID,
		UserID:   edge.UserID,
		JoinedAt: edge.JoinedAt,
	}, nil
}

func (h Handler) LeaveEventHandler(ctx context.Context, eventID string, actorID string) error {
	return h.LeaveEvent.Execute(ctx, commands.LeaveEventCommand{EventID: eventID, ActorID: actorID})
}

func (h Handler) ListAttendeesHandler(ctx context.Context, eventID string) (httptransport.ListAttendeesResponse, error) {
	edges, err := h.ListAttendees.Execute(ctx, eventID)
	if err != nil {
		return httptransport.ListAttendeesResponse{}, err
	}
	items := make([]httptransport.AttendeeDTO, 0, len(edges))
	for _, edge := range edges {
		items = append(items, httptransport.AttendeeDTO{
			UserID:   edge.UserID,
			JoinedAt: edge.JoinedAt,
		})
	}
	return httptransport.ListAttendeesResponse{EventID: eventID, Attendees: items}, nil
}

func eventDTO(event entities.Event) httptransport.EventDTO {
	return httptransport.EventDTO{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Capacity:    event.Capacity,
		Status:      string(event.Status),
		CreatedBy:   event.CreatedBy,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}
