package notificationservice

import (
	"log/slog"

	httpadapter "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/adapters/http"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/application/workers"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Dedup   ports.DedupStore
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Dedup       ports.DedupStore
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:        deps.Repository,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service},
		Service: service,
		Dedup:   deps.Dedup,
	}
}

// NewMembershipConsumer builds the worker that turns attendance events into
// creator notifications.
func NewMembershipConsumer(module Module, subscriber ports.Subscriber, logger *slog.Logger) workers.MembershipActivityConsumer {
	return workers.MembershipActivityConsumer{
		Service:    module.Service,
		Dedup:      module.Dedup,
		Subscriber: subscriber,
		Logger:     logger,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Dedup:       store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
