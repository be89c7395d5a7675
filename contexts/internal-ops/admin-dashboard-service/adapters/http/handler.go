package httpadapter

import (
	"context"

	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/application"
	httptransport "github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/transport/http"
)

type Handler struct {
	Service application.Service
}

func (h Handler) DashboardHandler(ctx context.Context) (httptransport.DashboardResponse, error) {
	snapshot, err := h.Service.Snapshot(ctx)
	if err != nil {
		return httptransport.DashboardResponse{}, err
	}

	users := make([]httptransport.RecentUserDTO, 0, len(snapshot.RecentUsers))
	for _, user := range snapshot.RecentUsers {
		users = append(users, httptransport.RecentUserDTO{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}
	events := make([]httptransport.RecentEventDTO, 0, len(snapshot.RecentEvents))
	for _, event := range snapshot.RecentEvents {
		events = append(events, httptransport.RecentEventDTO{
			ID:        event.ID,
			Title:     event.Title,
			Status:    event.Status,
			CreatedAt: event.CreatedAt,
		})
	}

	return httptransport.DashboardResponse{
		TotalUsers:     snapshot.TotalUsers,
		TotalEvents:    snapshot.TotalEvents,
		TotalClubs:     snapshot.TotalClubs,
		TotalPosts:     snapshot.TotalPosts,
		EventsByStatus: snapshot.EventsByStatus,
		RecentUsers:    users,
		RecentEvents:   events,
		GeneratedAt:    snapshot.GeneratedAt,
	}, nil
}
