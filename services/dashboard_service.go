package services

import (
	"context"
	"fmt"

	"github.com/academyhq/academy-console/backend"
	"github.com/academyhq/academy-console/models"
)

type DashboardService interface {
	GetSummary(ctx context.Context) (models.DashboardSummary, error)
}

type dashboardService struct {
	api *backend.Client
}

func NewDashboardService(api *backend.Client) DashboardService {
	return &dashboardService{api: api}
}

// GetSummary fetches the upstream counters and derives the combined
// income figure. Each per-category figure is already "sum of paid
// amounts" on the upstream side; the console only adds them up.
func (s *dashboardService) GetSummary(ctx context.Context) (models.DashboardSummary, error) {
	var stats models.DashboardStats
	if err := s.api.Get(ctx, "/dashboard", &stats); err != nil {
		return models.DashboardSummary{}, fmt.Errorf("fetch dashboard: %w", err)
	}
	return models.DashboardSummary{
		DashboardStats: stats,
		TotalIncome:    stats.SubscriptionIncome + stats.UniformIncome + stats.RegistrationIncome,
	}, nil
}
