package directory

import (
	"log/slog"

	httpadapter "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/adapters/http"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/adapters/memory"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application/commands"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application/queries"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/ports"
)

// Module is the directory-service composition root exposed to runtime wiring.
// ResolveRole is exported separately from Handler because the HTTP platform
// runs it per-request during authorization, outside any DTO mapping.
type Module struct {
	Handler     httpadapter.Handler
	ResolveRole queries.ResolveRoleUseCase
	Store       *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	resolveRole := queries.ResolveRoleUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	getUser := queries.GetUserUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	listUsers := queries.ListUsersUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	updateUser := commands.UpdateUserUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			GetUser:    getUser,
			ListUsers:  listUsers,
			UpdateUser: updateUser,
			Logger:     deps.Logger,
		},
		ResolveRole: resolveRole,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
