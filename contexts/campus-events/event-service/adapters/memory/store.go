package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"

	"github.com/google/uuid"
)

var errStoreUnavailable = errors.New("event store unavailable")

// Store is an in-memory adapter implementing the event-service ports,
// including Notifier so module tests can inspect emitted notifications.
type Store struct {
	mu sync.RWMutex

	events     map[string]entities.Event
	attendance map[string]map[string]entities.Attendance
	outbox     []outboxRow
	notices    []ports.NotificationInput

	FailWrites bool
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

func NewStore() *Store {
	return &Store{
		events:     make(map[string]entities.Event),
		attendance: make(map[string]map[string]entities.Attendance),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreateEvent(_ context.Context, event entities.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errStoreUnavailable
	}
	s.events[event.ID] = event
	return nil
}

func (s *Store) GetEvent(_ context.Context, id string) (entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[id]
	if !ok {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	return event, nil
}

func (s *Store) ListEvents(_ context.Context, filter ports.EventFilter) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Event, 0, len(s.events))
	for _, event := range s.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		items = append(items, event)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) UpdateEvent(_ context.Context, id string, update ports.EventUpdate) (entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	if update.Title != nil {
		event.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		event.Description = strings.TrimSpace(*update.Description)
	}
	if update.Location != nil {
		event.Location = strings.TrimSpace(*update.Location)
	}
	if update.StartsAt != nil {
		event.StartsAt = update.StartsAt.UTC()
	}
	if update.EndsAt != nil {
		endsAt := update.EndsAt.UTC()
		event.EndsAt = &endsAt
	}
	if update.Capacity != nil {
		event.Capacity = *update.Capacity
	}
	event.UpdatedAt = update.UpdatedAt
	s.events[id] = event
	return event, nil
}

func (s *Store) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return domainerrors.ErrEventNotFound
	}
	delete(s.events, id)
	delete(s.attendance, id)
	return nil
}

func (s *Store) ChangeStatus(_ context.Context, input ports.StatusChangeInput) (entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[input.EventID]
	if !ok {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	if event.Status != input.From {
		return entities.Event{}, domainerrors.ErrInvalidTransition
	}
	event.Status = input.To
	event.UpdatedAt = input.ChangedAt
	s.events[input.EventID] = event
	s.appendOutbox(input.OutboxID, "events.status_changed", input.OutboxPayload, input.ChangedAt)
	return event, nil
}

func (s *Store) AddAttendance(_ context.Context, input ports.JoinInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	edges, ok := s.attendance[input.EventID]
	if !ok {
		edges = make(map[string]entities.Attendance)
		s.attendance[input.EventID] = edges
	}
	if _, exists := edges[input.UserID]; exists {
		return domainerrors.ErrAlreadyJoined
	}
	edges[input.UserID] = entities.Attendance{
		EventID:  input.EventID,
		UserID:   input.UserID,
		JoinedAt: input.JoinedAt,
	}
	s.appendOutbox(input.OutboxID, "events.attendance", input.OutboxPayload, input.JoinedAt)
	return nil
}

func (s *Store) RemoveAttendance(_ context.Context, input ports.LeaveInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	edges := s.attendance[input.EventID]
	if _, exists := edges[input.UserID]; !exists {
		return domainerrors.ErrNotJoined
	}
	delete(edges, input.UserID)
	s.appendOutbox(input.OutboxID, "events.attendance", input.OutboxPayload, input.LeftAt)
	return nil
}

func (s *Store) ListAttendance(_ context.Context, eventID string) ([]entities.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	edges := s.attendance[eventID]
	items := make([]entities.Attendance, 0, len(edges))
	for _, edge := range edges {
		items = append(items, edge)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].JoinedAt.Equal(items[j].JoinedAt) {
			return items[i].UserID < items[j].UserID
		}
		return items[i].JoinedAt.Before(items[j].JoinedAt)
	})
	return items, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.OutboxMessage, 0, limit)
	for _, row := range s.outbox {
		if row.PublishedAt != nil {
			continue
		}
		items = append(items, row.OutboxMessage)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outbox {
		if s.outbox[i].OutboxID == outboxID {
			at := publishedAt
			s.outbox[i].PublishedAt = &at
			return nil
		}
	}
	return nil
}

func (s *Store) RecordNotification(_ context.Context, input ports.NotificationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errStoreUnavailable
	}
	s.notices = append(s.notices, input)
	return nil
}

// Notifications returns a copy of everything recorded through the Notifier port.
func (s *Store) Notifications() []ports.NotificationInput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.NotificationInput(nil), s.notices...)
}

func (s *Store) appendOutbox(id string, eventType string, payload []byte, createdAt time.Time) {
	s.outbox = append(s.outbox, outboxRow{
		OutboxMessage: ports.OutboxMessage{
			OutboxID:  id,
			EventType: eventType,
			Payload:   append([]byte(nil), payload...),
			CreatedAt: createdAt,
		},
	})
}
