package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	clubservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/club-service"
	notificationservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/notification-service"
	postservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-community/post-service"
	eventservice "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service"
	evententities "github.com/chetanck03/Terminal-Tribe/contexts/campus-events/event-service/domain/entities"
	directory "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service"
	directoryentities "github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	admindashboardservice "github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/identity"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

type testEnv struct {
	server    *httptest.Server
	directory directory.Module
	events    eventservice.Module
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	verifier, err := identity.NewVerifier(testSecret)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	directoryModule := directory.NewInMemoryModule(nil)
	eventModule := eventservice.NewInMemoryModule(nil)

	server := New(Modules{
		Directory:     directoryModule,
		Events:        eventModule,
		Clubs:         clubservice.NewInMemoryModule(nil),
		Posts:         postservice.NewInMemoryModule(nil),
		Notifications: notificationservice.NewInMemoryModule(nil),
		Dashboard:     admindashboardservice.NewInMemoryModule(nil),
	}, verifier, nil, "")

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return testEnv{server: ts, directory: directoryModule, events: eventModule}
}

func signToken(t *testing.T, secret string, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": subject + "@campus.edu",
		"exp":   expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, env testEnv, method string, path string, token string, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, env.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func seedPendingEvent(t *testing.T, env testEnv, id string, creatorID string) {
	t.Helper()
	now := time.Now().UTC()
	if err := env.events.Store.CreateEvent(context.Background(), evententities.Event{
		ID:        id,
		Title:     "Open Mic Night",
		StartsAt:  now.Add(24 * time.Hour),
		Status:    evententities.StatusPending,
		CreatedBy: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}
}

func seedAdmin(env testEnv, subject string) {
	env.directory.Store.Seed(directoryentities.User{
		ID:    subject,
		Email: subject + "@campus.edu",
		Name:  subject,
		Role:  directoryentities.RoleAdmin,
	})
}

func TestHealthzIsOpen(t *testing.T) {
	env := newTestEnv(t)
	resp := doRequest(t, env, http.MethodGet, "/healthz", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAnonymousJoinRejected(t *testing.T) {
	env := newTestEnv(t)
	seedPendingEvent(t, env, "event-1", "creator-1")

	resp := doRequest(t, env, http.MethodPost, "/api/events/event-1/join", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); msg == "" {
		t.Fatal("expected an error body")
	}

	edges, err := env.events.Store.ListAttendance(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("list attendance: %v", err)
	}
	if len(edges) != 0 {
		t.Fatalf("anonymous join must not create attendance, got %d", len(edges))
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, testSecret, "user-1", time.Now().Add(-time.Hour))

	resp := doRequest(t, env, http.MethodGet, "/api/events", token, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); msg != "bearer token is expired" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestForgedTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, "wrong-secret", "user-1", time.Now().Add(time.Hour))

	resp := doRequest(t, env, http.MethodGet, "/api/events", token, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestDashboardRequiresAdminRecord(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, testSecret, "user-1", time.Now().Add(time.Hour))

	resp := doRequest(t, env, http.MethodGet, "/api/admin/dashboard", token, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.StatusCode)
	}

	seedAdmin(env, "admin-1")
	adminToken := signToken(t, testSecret, "admin-1", time.Now().Add(time.Hour))
	resp = doRequest(t, env, http.MethodGet, "/api/admin/dashboard", adminToken, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.StatusCode)
	}
}

func TestApproveThenJoinFlow(t *testing.T) {
	env := newTestEnv(t)
	seedAdmin(env, "admin-1")
	seedPendingEvent(t, env, "event-1", "creator-1")
	adminToken := signToken(t, testSecret, "admin-1", time.Now().Add(time.Hour))
	userToken := signToken(t, testSecret, "user-1", time.Now().Add(time.Hour))

	// A regular user cannot join a pending event.
	resp := doRequest(t, env, http.MethodPost, "/api/events/event-1/join", userToken, "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("joining pending event: expected 409, got %d", resp.StatusCode)
	}

	// Approval is admin-only.
	resp = doRequest(t, env, http.MethodPost, "/api/events/event-1/approve", userToken, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin approve: expected 403, got %d", resp.StatusCode)
	}

	resp = doRequest(t, env, http.MethodPost, "/api/events/event-1/approve", adminToken, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin approve: expected 200, got %d", resp.StatusCode)
	}
	var approved struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&approved); err != nil {
		t.Fatalf("decode approve body: %v", err)
	}
	if approved.Status != "APPROVED" {
		t.Fatalf("expected APPROVED, got %q", approved.Status)
	}

	resp = doRequest(t, env, http.MethodPost, "/api/events/event-1/join", userToken, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("join approved event: expected 201, got %d", resp.StatusCode)
	}

	// The same user joining twice is a conflict.
	resp = doRequest(t, env, http.MethodPost, "/api/events/event-1/join", userToken, "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate join: expected 409, got %d", resp.StatusCode)
	}
}

func TestCreateEventRejectsUnknownFields(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, testSecret, "user-1", time.Now().Add(time.Hour))

	resp := doRequest(t, env, http.MethodPost, "/api/events", token, `{"title":"x","starts_at":"2026-09-01T10:00:00Z","bogus":true}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateEventValidationMessage(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, testSecret, "user-1", time.Now().Add(time.Hour))

	resp := doRequest(t, env, http.MethodPost, "/api/events", token, `{"starts_at":"2026-09-01T10:00:00Z"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); !strings.Contains(msg, "title") {
		t.Fatalf("expected the failing field named, got %q", msg)
	}
}

func TestProfileUpdateSelfOrAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	userToken := signToken(t, testSecret, "user-1", time.Now().Add(time.Hour))
	otherToken := signToken(t, testSecret, "user-2", time.Now().Add(time.Hour))

	// First authenticated call provisions the directory record.
	resp := doRequest(t, env, http.MethodGet, "/api/users/user-1", userToken, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get own record: expected 200, got %d", resp.StatusCode)
	}

	resp = doRequest(t, env, http.MethodPut, "/api/users/user-1", otherToken, `{"name":"Hijack"}`)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign profile edit: expected 403, got %d", resp.StatusCode)
	}

	resp = doRequest(t, env, http.MethodPut, "/api/users/user-1", userToken, `{"name":"Renamed"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("self profile edit: expected 200, got %d", resp.StatusCode)
	}

	// Role escalation through the profile endpoint needs an ADMIN record.
	resp = doRequest(t, env, http.MethodPut, "/api/users/user-1", userToken, `{"role":"ADMIN"}`)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("self promotion: expected 403, got %d", resp.StatusCode)
	}
}
