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

type Players struct {
	mu     sync.RWMutex
	api    *backend.Client
	feed   *notify.Feed
	logger *slog.Logger
	items  []models.Player
}

func NewPlayers(api *backend.Client, feed *notify.Feed, logger *slog.Logger) *Players {
	return &Players{api: api, feed: feed, logger: logger}
}

// FetchAll replaces the mirror with the upstream collection.
func (m *Players) FetchAll(ctx context.Context) error {
	var fetched []models.Player
	if err := m.api.Get(ctx, "/players", &fetched); err != nil {
		m.feed.Error("failed to load players")
		return fmt.Errorf("fetch players: %w", err)
	}

	m.mu.Lock()
	m.items = fetched
	m.mu.Unlock()
	m.logger.Debug("players mirror refreshed", slog.Int("count", len(fetched)))
	return nil
}

func (m *Players) Refresh(ctx context.Context) error {
	return m.FetchAll(ctx)
}

// Snapshot returns a copy of the mirror; callers can iterate freely.
func (m *Players) Snapshot() []models.Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Player, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Players) Create(ctx context.Context, in models.PlayerInput) (models.Player, error) {
	var created models.Player
	msg, err := m.api.Post(ctx, "/players", in, &created)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to add player"))
		return models.Player{}, err
	}

	m.mu.Lock()
	m.items = append([]models.Player{created}, m.items...)
	m.mu.Unlock()
	m.feed.Success(orDefault(msg, "player added"))
	return created, nil
}

func (m *Players) Update(ctx context.Context, id string, in models.PlayerInput) (models.Player, error) {
	var updated models.Player
	msg, err := m.api.Put(ctx, "/players/"+id, in, &updated)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to update player"))
		return models.Player{}, err
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
		return models.Player{}, fmt.Errorf("update player %s: %w", id, ErrNotInMirror)
	}
	m.feed.Success(orDefault(msg, "player updated"))
	return updated, nil
}

func (m *Players) Delete(ctx context.Context, id string) error {
	if _, err := m.api.Delete(ctx, "/players/"+id); err != nil {
		m.feed.Error(failureMessage(err, "failed to delete player"))
		return err
	}

	m.mu.Lock()
	kept := m.items[:0]
	for _, p := range m.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.items = kept
	m.mu.Unlock()
	m.feed.Success("player deleted")
	return nil
}
