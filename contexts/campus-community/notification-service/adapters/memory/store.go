package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/errors"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/domain/entities"
)

// Store is an in-memory Repository, DedupStore, Clock and IDGenerator for
// tests and local development.
type Store struct {
	mu            sync.RWMutex
	notifications map[string]entities.Notification
	processed     map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		notifications: make(map[string]entities.Notification),
		processed:     make(map[string]struct{}),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) CreateNotification(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[notification.ID] = notification
	return nil
}

func (s *Store) ListForUser(_ context.Context, userID string) ([]entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Notification, 0)
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			items = append(items, notification)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) MarkRead(_ context.Context, notificationID string, userID string) (entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification, ok := s.notifications[notificationID]
	if !ok || notification.UserID != userID {
		return entities.Notification{}, domainerrors.ErrNotificationNotFound
	}
	notification.Read = true
	s.notifications[notificationID] = notification
	return notification, nil
}

func (s *Store) DeleteNotification(_ context.Context, notificationID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification, ok := s.notifications[notificationID]
	if !ok || notification.UserID != userID {
		return domainerrors.ErrNotificationNotFound
	}
	delete(s.notifications, notificationID)
	return nil
}

func (s *Store) MarkProcessed(_ context.Context, consumerGroup string, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := consumerGroup + "|" + eventID
	if _, ok := s.processed[key]; ok {
		return false, nil
	}
	s.processed[key] = struct{}{}
	return true, nil
}
