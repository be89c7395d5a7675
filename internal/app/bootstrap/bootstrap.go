package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	clubservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service"
	clubpostgres "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service/adapters/postgres"
	notificationservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service"
	notificationpostgres "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/adapters/postgres"
	notificationworkers "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service/application/workers"
	postservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service"
	postpostgres "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service/adapters/postgres"
	eventservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service"
	eventpostgres "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/adapters/postgres"
	eventworkers "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/application/workers"
	directory "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service"
	directorypostgres "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/adapters/postgres"
	admindashboardservice "github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service"
	dashboardmemory "github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	dashboardpostgres "github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/adapters/postgres"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/config"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/db"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/httpserver"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/identity"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  eventworkers.OutboxRelay
	membership   notificationworkers.MembershipActivityConsumer
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	verifier, err := identity.NewVerifier(cfg.AuthJWTSecret)
	if err != nil {
		return nil, err
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	directoryModule := directory.NewModule(directory.Dependencies{
		Repository: directorypostgres.NewRepository(pg.DB, logger),
		Clock:      directorypostgres.SystemClock{},
		Logger:     logger,
	})

	notificationRepo := notificationpostgres.NewRepository(pg.DB)
	notificationModule := notificationservice.NewModule(notificationservice.Dependencies{
		Repository:  notificationRepo,
		Dedup:       notificationRepo,
		Clock:       notificationpostgres.SystemClock{},
		IDGenerator: notificationpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	eventRepo := eventpostgres.NewRepository(pg.DB, logger)
	eventModule := eventservice.NewModule(eventservice.Dependencies{
		Repository:  eventRepo,
		Outbox:      eventRepo,
		Notifier:    moderationNotifier{service: notificationModule.Service},
		Clock:       eventpostgres.SystemClock{},
		IDGenerator: eventpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	clubModule := clubservice.NewModule(clubservice.Dependencies{
		Repository:  clubpostgres.NewRepository(pg.DB),
		Clock:       clubpostgres.SystemClock{},
		IDGenerator: clubpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	postModule := postservice.NewModule(postservice.Dependencies{
		Repository:  postpostgres.NewRepository(pg.DB),
		Clock:       postpostgres.SystemClock{},
		IDGenerator: postpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	dashboardModule := admindashboardservice.NewModule(admindashboardservice.Dependencies{
		Repository: dashboardpostgres.NewRepository(pg.DB),
		Cache:      dashboardmemory.NewSnapshotCache(),
		Clock:      dashboardpostgres.SystemClock{},
		CacheTTL:   cfg.DashboardCacheTTL,
		Logger:     logger,
	})

	server := httpserver.New(httpserver.Modules{
		Directory:     directoryModule,
		Events:        eventModule,
		Clubs:         clubModule,
		Posts:         postModule,
		Notifications: notificationModule,
		Dashboard:     dashboardModule,
	}, verifier, logger, normalizeAddr(cfg.HTTPPort))

	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)

	eventRepo := eventpostgres.NewRepository(pg.DB, logger)
	notificationRepo := notificationpostgres.NewRepository(pg.DB)
	notificationModule := notificationservice.NewModule(notificationservice.Dependencies{
		Repository:  notificationRepo,
		Dedup:       notificationRepo,
		Clock:       notificationpostgres.SystemClock{},
		IDGenerator: notificationpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	return &WorkerApp{
		postgres: pg,
		outboxRelay: eventworkers.OutboxRelay{
			Outbox:    eventRepo,
			Publisher: bus,
			Clock:     eventpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		membership:   notificationservice.NewMembershipConsumer(notificationModule, bus, logger),
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.membership.Start(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
