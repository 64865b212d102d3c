package services

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/academyhq/academy-console/filters"
	"github.com/academyhq/academy-console/mirror"
	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/reconcile"
)

// RegistrationStats accompanies every registration listing, the numbers
// the stats cards in the view render.
type RegistrationStats struct {
	TotalPlayers  int            `json:"totalPlayers"`
	PaidCount     int            `json:"paidCount"`
	TotalIncome   models.Money   `json:"totalIncome"`
	DuplicateRefs map[string]int `json:"duplicateRefs,omitempty"`
}

type RegistrationService interface {
	List(filter filters.State) ([]models.Registration, RegistrationStats)
	Save(ctx context.Context, in models.RegistrationInput, editingID string) (models.Registration, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

type registrationService struct {
	registrations *mirror.Registrations
	players       *mirror.Players
	clock         clockwork.Clock
}

func NewRegistrationService(registrations *mirror.Registrations, players *mirror.Players, clock clockwork.Clock) RegistrationService {
	return &registrationService{registrations: registrations, players: players, clock: clock}
}

func (s *registrationService) List(filter filters.State) ([]models.Registration, RegistrationStats) {
	regs := s.registrations.Snapshot()
	stats := RegistrationStats{
		TotalPlayers:  len(s.players.Snapshot()),
		TotalIncome:   reconcile.RegistrationIncome(regs),
		DuplicateRefs: reconcile.DuplicateRegistrations(regs),
	}
	for i := range regs {
		if regs[i].HasPaid {
			stats.PaidCount++
		}
	}
	if len(stats.DuplicateRefs) == 0 {
		stats.DuplicateRefs = nil
	}
	return filters.Registrations(regs, filter), stats
}

// Save creates or updates a registration. The fixed enrollment fee is
// applied here, and the payment date is stamped when the record is saved
// as paid and cleared when it is not — the form never supplies either.
func (s *registrationService) Save(ctx context.Context, in models.RegistrationInput, editingID string) (models.Registration, error) {
	if err := in.Validate(); err != nil {
		return models.Registration{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}

	in.Amount = models.RegistrationFee
	if in.HasPaid {
		now := s.clock.Now()
		in.PaymentDate = &now
	} else {
		in.PaymentDate = nil
	}

	if editingID != "" {
		return s.registrations.Update(ctx, editingID, in)
	}
	return s.registrations.Create(ctx, in)
}

func (s *registrationService) Delete(ctx context.Context, id string) error {
	return s.registrations.Delete(ctx, id)
}

func (s *registrationService) Refresh(ctx context.Context) error {
	return s.registrations.Refresh(ctx)
}
