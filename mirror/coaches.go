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

// Coaches mirrors the upstream /users collection (coaches and admins).
type Coaches struct {
	mu     sync.RWMutex
	api    *backend.Client
	feed   *notify.Feed
	logger *slog.Logger
	items  []models.Coach
}

func NewCoaches(api *backend.Client, feed *notify.Feed, logger *slog.Logger) *Coaches {
	return &Coaches{api: api, feed: feed, logger: logger}
}

func (m *Coaches) FetchAll(ctx context.Context) error {
	var fetched []models.Coach
	if err := m.api.Get(ctx, "/users", &fetched); err != nil {
		m.feed.Error("failed to load coaches")
		return fmt.Errorf("fetch coaches: %w", err)
	}

	m.mu.Lock()
	m.items = fetched
	m.mu.Unlock()
	m.logger.Debug("coaches mirror refreshed", slog.Int("count", len(fetched)))
	return nil
}

func (m *Coaches) Refresh(ctx context.Context) error {
	return m.FetchAll(ctx)
}

func (m *Coaches) Snapshot() []models.Coach {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Coach, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Coaches) Create(ctx context.Context, in models.CoachInput) (models.Coach, error) {
	var created models.Coach
	msg, err := m.api.Post(ctx, "/users", in, &created)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to add coach"))
		return models.Coach{}, err
	}

	m.mu.Lock()
	m.items = append([]models.Coach{created}, m.items...)
	m.mu.Unlock()
	m.feed.Success(orDefault(msg, "coach added"))
	return created, nil
}

func (m *Coaches) Update(ctx context.Context, id string, in models.CoachInput) (models.Coach, error) {
	var updated models.Coach
	msg, err := m.api.Put(ctx, "/users/"+id, in, &updated)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to update coach"))
		return models.Coach{}, err
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
		return models.Coach{}, fmt.Errorf("update coach %s: %w", id, ErrNotInMirror)
	}
	m.feed.Success(orDefault(msg, "coach updated"))
	return updated, nil
}

func (m *Coaches) Delete(ctx context.Context, id string) error {
	if _, err := m.api.Delete(ctx, "/users/"+id); err != nil {
		m.feed.Error(failureMessage(err, "failed to delete coach"))
		return err
	}

	m.mu.Lock()
	kept := m.items[:0]
	for _, c := range m.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.items = kept
	m.mu.Unlock()
	m.feed.Success("coach deleted")
	return nil
}
