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

type Uniforms struct {
	mu     sync.RWMutex
	api    *backend.Client
	feed   *notify.Feed
	logger *slog.Logger
	items  []models.Uniform
}

func NewUniforms(api *backend.Client, feed *notify.Feed, logger *slog.Logger) *Uniforms {
	return &Uniforms{api: api, feed: feed, logger: logger}
}

func (m *Uniforms) FetchAll(ctx context.Context) error {
	var fetched []models.Uniform
	if err := m.api.Get(ctx, "/uniforms", &fetched); err != nil {
		m.feed.Error("failed to load uniforms")
		return fmt.Errorf("fetch uniforms: %w", err)
	}

	kept := make([]models.Uniform, 0, len(fetched))
	for _, u := range fetched {
		if u.Player == nil || u.Player.ID == "" {
			continue
		}
		kept = append(kept, u)
	}
	if dropped := len(fetched) - len(kept); dropped > 0 {
		m.feed.Warning(fmt.Sprintf("%d uniform order(s) reference a missing player and were hidden", dropped))
		m.logger.Warn("dropped uniforms with unresolvable player refs", slog.Int("dropped", dropped))
	}

	m.mu.Lock()
	m.items = kept
	m.mu.Unlock()
	m.logger.Debug("uniforms mirror refreshed", slog.Int("count", len(kept)))
	return nil
}

func (m *Uniforms) Refresh(ctx context.Context) error {
	return m.FetchAll(ctx)
}

func (m *Uniforms) Snapshot() []models.Uniform {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Uniform, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Uniforms) Create(ctx context.Context, in models.UniformInput) (models.Uniform, error) {
	var created models.Uniform
	msg, err := m.api.Post(ctx, "/uniforms", in, &created)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to add uniform order"))
		return models.Uniform{}, err
	}

	m.mu.Lock()
	m.items = append([]models.Uniform{created}, m.items...)
	m.mu.Unlock()
	m.feed.Success(orDefault(msg, "uniform order added"))
	return created, nil
}

func (m *Uniforms) Update(ctx context.Context, id string, in models.UniformInput) (models.Uniform, error) {
	var updated models.Uniform
	msg, err := m.api.Put(ctx, "/uniforms/"+id, in, &updated)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to update uniform order"))
		return models.Uniform{}, err
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
		return models.Uniform{}, fmt.Errorf("update uniform %s: %w", id, ErrNotInMirror)
	}
	m.feed.Success(orDefault(msg, "uniform order updated"))
	return updated, nil
}

func (m *Uniforms) Delete(ctx context.Context, id string) error {
	if _, err := m.api.Delete(ctx, "/uniforms/"+id); err != nil {
		m.feed.Error(failureMessage(err, "failed to delete uniform order"))
		return err
	}

	m.mu.Lock()
	kept := m.items[:0]
	for _, u := range m.items {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	m.items = kept
	m.mu.Unlock()
	m.feed.Success("uniform order deleted")
	return nil
}
