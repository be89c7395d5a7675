package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	clubservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service"
	notificationservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service"
	postservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service"
	eventservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service"
	directory "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service"
	admindashboardservice "github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/identity"

	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/chetanck03/Terminal-Tribe/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	verifier *identity.Verifier
	validate *validator.Validate

	directory     directory.Module
	events        eventservice.Module
	clubs         clubservice.Module
	posts         postservice.Module
	notifications notificationservice.Module
	dashboard     admindashboardservice.Module
}

// Modules bundles every service the HTTP surface exposes.
type Modules struct {
	Directory     directory.Module
	Events        eventservice.Module
	Clubs         clubservice.Module
	Posts         postservice.Module
	Notifications notificationservice.Module
	Dashboard     admindashboardservice.Module
}

func New(modules Modules, verifier *identity.Verifier, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		verifier:      verifier,
		validate:      validator.New(),
		directory:     modules.Directory,
		events:        modules.Events,
		clubs:         modules.Clubs,
		posts:         modules.Posts,
		notifications: modules.Notifications,
		dashboard:     modules.Dashboard,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/events", s.handleListEvents)
	s.mux.HandleFunc("GET /api/events/{id}", s.handleGetEvent)
	s.mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	s.mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)
	s.mux.HandleFunc("POST /api/events/{id}/approve", s.handleApproveEvent)
	s.mux.HandleFunc("POST /api/events/{id}/reject", s.handleRejectEvent)
	s.mux.HandleFunc("POST /api/events/{id}/cancel", s.handleCancelEvent)
	s.mux.HandleFunc("POST /api/events/{id}/join", s.handleJoinEvent)
	s.mux.HandleFunc("DELETE /api/events/{id}/join", s.handleLeaveEvent)
	s.mux.HandleFunc("GET /api/events/{id}/attendees", s.handleListAttendees)

	s.mux.HandleFunc("GET /api/clubs", s.handleListClubs)
	s.mux.HandleFunc("GET /api/clubs/{id}", s.handleGetClub)
	s.mux.HandleFunc("POST /api/clubs", s.handleCreateClub)
	s.mux.HandleFunc("PUT /api/clubs/{id}", s.handleUpdateClub)
	s.mux.HandleFunc("DELETE /api/clubs/{id}", s.handleDeleteClub)
	s.mux.HandleFunc("POST /api/clubs/{id}/join", s.handleJoinClub)
	s.mux.HandleFunc("DELETE /api/clubs/{id}/join", s.handleLeaveClub)

	s.mux.HandleFunc("GET /api/posts", s.handleListPosts)
	s.mux.HandleFunc("GET /api/posts/{id}", s.handleGetPost)
	s.mux.HandleFunc("POST /api/posts", s.handleCreatePost)
	s.mux.HandleFunc("PUT /api/posts/{id}", s.handleUpdatePost)
	s.mux.HandleFunc("DELETE /api/posts/{id}", s.handleDeletePost)

	s.mux.HandleFunc("GET /api/notifications", s.handleListNotifications)
	s.mux.HandleFunc("PUT /api/notifications/{id}/read", s.handleMarkNotificationRead)
	s.mux.HandleFunc("DELETE /api/notifications/{id}", s.handleDeleteNotification)

	s.mux.HandleFunc("GET /api/users", s.handleListUsers)
	s.mux.HandleFunc("GET /api/users/{id}", s.handleGetUser)
	s.mux.HandleFunc("PUT /api/users/{id}", s.handleUpdateUser)

	s.mux.HandleFunc("GET /api/admin/dashboard", s.handleAdminDashboard)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError emits the uniform failure body shared by every endpoint.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
