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

type SubscriptionStats struct {
	TotalIncome  models.Money          `json:"totalIncome"`
	UnpaidCount  int                   `json:"unpaidCount"`
	OverdueCount int                   `json:"overdueCount"`
	Overdue      []models.Subscription `json:"overdue"`
}

type SubscriptionService interface {
	List(filter filters.State) ([]models.Subscription, SubscriptionStats)
	Create(ctx context.Context, in models.SubscriptionInput) (models.Subscription, error)
	Update(ctx context.Context, id string, in models.SubscriptionInput) (models.Subscription, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

type subscriptionService struct {
	subscriptions *mirror.Subscriptions
	clock         clockwork.Clock
}

func NewSubscriptionService(subscriptions *mirror.Subscriptions, clock clockwork.Clock) SubscriptionService {
	return &subscriptionService{subscriptions: subscriptions, clock: clock}
}

// List narrows the mirror by the filter and derives income and the
// overdue set. Overdue is month-based: unpaid and the month already
// behind the clock.
func (s *subscriptionService) List(filter filters.State) ([]models.Subscription, SubscriptionStats) {
	subs := s.subscriptions.Snapshot()
	overdue := reconcile.OverdueSubscriptions(subs, s.clock.Now())
	stats := SubscriptionStats{
		TotalIncome:  reconcile.SubscriptionIncome(subs),
		OverdueCount: len(overdue),
		Overdue:      overdue,
	}
	for i := range subs {
		if !subs[i].HasPaid {
			stats.UnpaidCount++
		}
	}
	return filters.Subscriptions(subs, filter), stats
}

func (s *subscriptionService) Create(ctx context.Context, in models.SubscriptionInput) (models.Subscription, error) {
	if err := in.Validate(); err != nil {
		return models.Subscription{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.subscriptions.Create(ctx, in)
}

func (s *subscriptionService) Update(ctx context.Context, id string, in models.SubscriptionInput) (models.Subscription, error) {
	if err := in.Validate(); err != nil {
		return models.Subscription{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	return s.subscriptions.Update(ctx, id, in)
}

func (s *subscriptionService) Delete(ctx context.Context, id string) error {
	return s.subscriptions.Delete(ctx, id)
}

func (s *subscriptionService) Refresh(ctx context.Context) error {
	return s.subscriptions.Refresh(ctx)
}
