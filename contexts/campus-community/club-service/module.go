package clubservice

import (
	"log/slog"

	httpadapter "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/adapters/http"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
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
	return Module{Handler: httpadapter.Handler{Service: service}}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
