package postgresadapter

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/chetanck03/Terminal-Tribe/contexts/internal-ops/admin-dashboard-service/ports"
)

// Repository reads dashboard aggregates straight from the portal tables.
// It owns no tables of its own.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return Repository{DB: db}
}

func (r Repository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "users")
}

func (r Repository) CountEvents(ctx context.Context) (int, error) {
	return r.count(ctx, "events")
}

func (r Repository) CountClubs(ctx context.Context) (int, error) {
	return r.count(ctx, "clubs")
}

func (r Repository) CountPosts(ctx context.Context) (int, error) {
	return r.count(ctx, "posts")
}

func (r Repository) count(ctx context.Context, table string) (int, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Table(table).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return int(total), nil
}

func (r Repository) CountEventsByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.DB.WithContext(ctx).
		Table("events").
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count events by status: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = int(row.Total)
	}
	return counts, nil
}

func (r Repository) ListRecentUsers(ctx context.Context, limit int) ([]ports.RecentUser, error) {
	var rows []struct {
		ID        string
		Name      string
		Email     string
		Role      string
		CreatedAt time.Time
	}
	err := r.DB.WithContext(ctx).
		Table("users").
		Select("id, name, email, role, created_at").
		Order("created_at DESC, id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}
	users := make([]ports.RecentUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, ports.RecentUser{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Role:      row.Role,
			CreatedAt: row.CreatedAt,
		})
	}
	return users, nil
}

func (r Repository) ListRecentEvents(ctx context.Context, limit int) ([]ports.RecentEvent, error) {
	var rows []struct {
		ID        string
		Title     string
		Status    string
		CreatedAt time.Time
	}
	err := r.DB.WithContext(ctx).
		Table("events").
		Select("id, title, status, created_at").
		Order("created_at DESC, id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	events := make([]ports.RecentEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, ports.RecentEvent{
			ID:        row.ID,
			Title:     row.Title,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
		})
	}
	return events, nil
}
