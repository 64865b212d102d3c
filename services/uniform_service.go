package services

import (
	"context"
	"fmt"

	"github.com/academyhq/academy-console/filters"
	"github.com/academyhq/academy-console/mirror"
	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/reconcile"
)

type UniformStats struct {
	TotalIncome   models.Money `json:"totalIncome"`
	ReceivedCount int          `json:"receivedCount"`
	PendingCount  int          `json:"pendingCount"`
}

type UniformService interface {
	List(filter filters.State) ([]models.Uniform, UniformStats)
	Create(ctx context.Context, in models.UniformInput) (models.Uniform, error)
	Update(ctx context.Context, id string, in models.UniformInput) (models.Uniform, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

type uniformService struct {
	uniforms *mirror.Uniforms
}

func NewUniformService(uniforms *mirror.Uniforms) UniformService {
	return &uniformService{uniforms: uniforms}
}

func (s *uniformService) List(filter filters.State) ([]models.Uniform, UniformStats) {
	us := s.uniforms.Snapshot()
	stats := UniformStats{TotalIncome: reconcile.UniformIncome(us)}
	for i := range us {
		if us[i].HasReceived {
			stats.ReceivedCount++
		} else {
			stats.PendingCount++
		}
	}
	return filters.Uniforms(us, filter), stats
}

func (s *uniformService) Create(ctx context.Context, in models.UniformInput) (models.Uniform, error) {
	if err := in.Validate(); err != nil {
		return models.Uniform{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.uniforms.Create(ctx, in)
}

func (s *uniformService) Update(ctx context.Context, id string, in models.UniformInput) (models.Uniform, error) {
	if err := in.Validate(); err != nil {
		return models.Uniform{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.uniforms.Update(ctx, id, in)
}

func (s *uniformService) Delete(ctx context.Context, id string) error {
	return s.uniforms.Delete(ctx, id)
}

func (s *uniformService) Refresh(ctx context.Context) error {
	return s.uniforms.Refresh(ctx)
}
