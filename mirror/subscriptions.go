package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/academyhq/academy-console/backend"
	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/notify"
)

type Subscriptions struct {
	mu     sync.RWMutex
	api    *backend.Client
	feed   *notify.Feed
	logger *slog.Logger
	items  []models.Subscription
}

func NewSubscriptions(api *backend.Client, feed *notify.Feed, logger *slog.Logger) *Subscriptions {
	return &Subscriptions{api: api, feed: feed, logger: logger}
}

func (m *Subscriptions) FetchAll(ctx context.Context) error {
	var fetched []models.Subscription
	if err := m.api.Get(ctx, "/subscriptions", &fetched); err != nil {
		m.feed.Error("failed to load subscriptions")
		return fmt.Errorf("fetch subscriptions: %w", err)
	}

	kept := make([]models.Subscription, 0, len(fetched))
	for _, sub := range fetched {
		if sub.Player == nil || sub.Player.ID == "" {
			continue
		}
		kept = append(kept, sub)
	}
	if dropped := len(fetched) - len(kept); dropped > 0 {
		m.feed.Warning(fmt.Sprintf("%d subscription(s) reference a missing player and were hidden", dropped))
		m.logger.Warn("dropped subscriptions with unresolvable player refs", slog.Int("dropped", dropped))
	}

	m.mu.Lock()
	m.items = kept
	m.mu.Unlock()
	m.logger.Debug("subscriptions mirror refreshed", slog.Int("count", len(kept)))
	return nil
}

func (m *Subscriptions) Refresh(ctx context.Context) error {
	return m.FetchAll(ctx)
}

func (m *Subscriptions) Snapshot() []models.Subscription {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Subscription, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Subscriptions) Create(ctx context.Context, in models.SubscriptionInput) (models.Subscription, error) {
	var created models.Subscription
	msg, err := m.api.Post(ctx, "/subscriptions", in, &created)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to add subscription"))
		return models.Subscription{}, err
	}

	m.mu.Lock()
	m.items = append([]models.Subscription{created}, m.items...)
	m.mu.Unlock()
	m.feed.Success(orDefault(msg, "subscription added"))
	return created, nil
}

func (m *Subscriptions) Update(ctx context.Context, id string, in models.SubscriptionInput) (models.Subscription, error) {
	var updated models.Subscription
	msg, err := m.api.Put(ctx, "/subscriptions/"+id, in, &updated)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to update subscription"))
		return models.Subscription{}, err
	}

	m.mu.Lock()
	replaced := false
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = updated
			replaced = true
			break
		}
	}
	m.mu.Unlock()
	if !replaced {
		return models.Subscription{}, fmt.Errorf("update subscription %s: %w", id, ErrNotInMirror)
	}
	m.feed.Success(orDefault(msg, "subscription updated"))
	return updated, nil
}

func (m *Subscriptions) Delete(ctx context.Context, id string) error {
	if _, err := m.api.Delete(ctx, "/subscriptions/"+id); err != nil {
		m.feed.Error(failureMessage(err, "failed to delete subscription"))
		return err
	}

	m.mu.Lock()
	kept := m.items[:0]
	for _, sub := range m.items {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	m.items = kept
	m.mu.Unlock()
	m.feed.Success("subscription deleted")
	return nil
}
