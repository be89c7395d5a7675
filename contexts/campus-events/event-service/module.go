package eventservice

import (
	"log/slog"

	httpadapter "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/adapters/http"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application/commands"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application/queries"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application/workers"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/ports"
)

// Module is the event-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Outbox  ports.OutboxRepository
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Outbox      ports.OutboxRepository
	Notifier    ports.Notifier
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	listEvents := queries.ListEventsUseCase{Repository: deps.Repository, Logger: deps.Logger}
	getEvent := queries.GetEventUseCase{Repository: deps.Repository, Logger: deps.Logger}
	listAttendees := queries.ListAttendeesUseCase{Repository: deps.Repository, Logger: deps.Logger}
	createEvent := commands.CreateEventUseCase{
		Repository:  deps.Repository,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateEvent := commands.UpdateEventUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	deleteEvent := commands.DeleteEventUseCase{Repository: deps.Repository, Logger: deps.Logger}
	moderateEvent := commands.ModerateEventUseCase{
		Repository:  deps.Repository,
		Notifier:    deps.Notifier,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	joinEvent := commands.JoinEventUseCase{
		Repository:  deps.Repository,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	leaveEvent := commands.LeaveEventUseCase{
		Repository:  deps.Repository,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			ListEvents:    listEvents,
			GetEvent:      getEvent,
			ListAttendees: listAttendees,
			CreateEvent:   createEvent,
			UpdateEvent:   updateEvent,
			DeleteEvent:   deleteEvent,
			ModerateEvent: moderateEvent,
			JoinEvent:     joinEvent,
			LeaveEvent:    leaveEvent,
			Logger:        deps.Logger,
		},
		Outbox: deps.Outbox,
	}
}

// NewOutboxRelay builds the worker that drains this module's outbox.
func NewOutboxRelay(module Module, publisher ports.EventPublisher, clock ports.Clock, logger *slog.Logger) workers.OutboxRelay {
	return workers.OutboxRelay{
		Outbox:    module.Outbox,
		Publisher: publisher,
		Clock:     clock,
		BatchSize: 100,
		Logger:    logger,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
// The store doubles as the Notifier so tests can inspect emitted notifications.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Outbox:      store,
		Notifier:    store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
