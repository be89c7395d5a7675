package admindashboardservice

import (
	"log/slog"
	"time"

	httpadapter "github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/adapters/http"
	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/application"
	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Cache      ports.SnapshotCache
	Clock      ports.Clock
	CacheTTL   time.Duration
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:     deps.Repository,
				Cache:    deps.Cache,
				Clock:    deps.Clock,
				CacheTTL: deps.CacheTTL,
				Logger:   deps.Logger,
			},
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Cache:      memory.NewSnapshotCache(),
		Clock:      store,
		CacheTTL:   30 * time.Second,
		Logger:     logger,
	})
	module.Store = store
	return module
}
