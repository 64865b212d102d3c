package services

import (
	"context"
	"fmt"

	"github.com/academyhq/academy-console/filters"
	"github.com/academyhq/academy-console/mirror"
	"github.com/academyhq/academy-console/models"
)

type CoachStats struct {
	CoachCount  int          `json:"coachCount"`
	TotalSalary models.Money `json:"totalSalary"`
}

type CoachService interface {
	List(searchTerm string) ([]models.Coach, CoachStats)
	Create(ctx context.Context, in models.CoachInput) (models.Coach, error)
	Update(ctx context.Context, id string, in models.CoachInput) (models.Coach, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

type coachService struct {
	coaches *mirror.Coaches
}

func NewCoachService(coaches *mirror.Coaches) CoachService {
	return &coachService{coaches: coaches}
}

// List filters by name or email and totals the salaries of COACH-role
// staff; admins in the same collection do not count toward either figure.
func (s *coachService) List(searchTerm string) ([]models.Coach, CoachStats) {
	all := s.coaches.Snapshot()
	var stats CoachStats
	for i := range all {
		if all[i].Role != models.RoleCoach {
			continue
		}
		stats.CoachCount++
		if all[i].Salary != nil {
			stats.TotalSalary += *all[i].Salary
		}
	}
	return filters.Coaches(all, searchTerm), stats
}

func (s *coachService) Create(ctx context.Context, in models.CoachInput) (models.Coach, error) {
	if err := in.Validate(); err != nil {
		return models.Coach{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.coaches.Create(ctx, in)
}

func (s *coachService) Update(ctx context.Context, id string, in models.CoachInput) (models.Coach, error) {
	if err := in.Validate(); err != nil {
		return models.Coach{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.coaches.Update(ctx, id, in)
}

func (s *coachService) Delete(ctx context.Context, id string) error {
	return s.coaches.Delete(ctx, id)
}

func (s *coachService) Refresh(ctx context.Context) error {
	return s.coaches.Refresh(ctx)
}
