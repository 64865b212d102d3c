package services

import (
	"context"
	"fmt"

	"github.com/academyhq/academy-console/filters"
	"github.com/academyhq/academy-console/mirror"
	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/reconcile"
)

type PlayerService interface {
	ListWithStatus(filter filters.State) []models.PlayerWithRegistrationStatus
	Create(ctx context.Context, in models.PlayerInput) (models.Player, error)
	Update(ctx context.Context, id string, in models.PlayerInput) (models.Player, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

type playerService struct {
	players       *mirror.Players
	registrations *mirror.Registrations
}

func NewPlayerService(players *mirror.Players, registrations *mirror.Registrations) PlayerService {
	return &playerService{players: players, registrations: registrations}
}

// ListWithStatus reconciles the current player and registration mirrors
// into the status-annotated view, then narrows it with the filter.
func (s *playerService) ListWithStatus(filter filters.State) []models.PlayerWithRegistrationStatus {
	joined := reconcile.PlayersWithStatus(s.players.Snapshot(), s.registrations.Snapshot())
	return filters.Players(joined, filter)
}

func (s *playerService) Create(ctx context.Context, in models.PlayerInput) (models.Player, error) {
	if err := in.Validate(); err != nil {
		return models.Player{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.players.Create(ctx, in)
}

func (s *playerService) Update(ctx context.Context, id string, in models.PlayerInput) (models.Player, error) {
	if err := in.Validate(); err != nil {
		return models.Player{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.players.Update(ctx, id, in)
}

func (s *playerService) Delete(ctx context.Context, id string) error {
	return s.players.Delete(ctx, id)
}

func (s *playerService) Refresh(ctx context.Context) error {
	if err := s.players.Refresh(ctx); err != nil {
		return err
	}
	return s.registrations.Refresh(ctx)
}
