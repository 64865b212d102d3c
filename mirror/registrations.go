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

type Registrations struct {
	mu     sync.RWMutex
	api    *backend.Client
	feed   *notify.Feed
	logger *slog.Logger
	items  []models.Registration
}

func NewRegistrations(api *backend.Client, feed *notify.Feed, logger *slog.Logger) *Registrations {
	return &Registrations{api: api, feed: feed, logger: logger}
}

// FetchAll replaces the mirror with the upstream collection, dropping
// records whose player relation cannot be resolved. Dropped records are
// a warning, not a failure: one broken row must not blank the view.
func (m *Registrations) FetchAll(ctx context.Context) error {
	var fetched []models.Registration
	if err := m.api.Get(ctx, "/registrations", &fetched); err != nil {
		m.feed.Error("failed to load registrations")
		return fmt.Errorf("fetch registrations: %w", err)
	}

	kept := make([]models.Registration, 0, len(fetched))
	for _, reg := range fetched {
		if reg.Player == nil || reg.Player.ID == "" {
			continue
		}
		kept = append(kept, reg)
	}
	if dropped := len(fetched) - len(kept); dropped > 0 {
		m.feed.Warning(fmt.Sprintf("%d registration(s) reference a missing player and were hidden", dropped))
		m.logger.Warn("dropped registrations with unresolvable player refs", slog.Int("dropped", dropped))
	}

	m.mu.Lock()
	m.items = kept
	m.mu.Unlock()
	m.logger.Debug("registrations mirror refreshed", slog.Int("count", len(kept)))
	return nil
}

func (m *Registrations) Refresh(ctx context.Context) error {
	return m.FetchAll(ctx)
}

func (m *Registrations) Snapshot() []models.Registration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Registration, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Registrations) Create(ctx context.Context, in models.RegistrationInput) (models.Registration, error) {
	var created models.Registration
	msg, err := m.api.Post(ctx, "/registrations", in, &created)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to save registration"))
		return models.Registration{}, err
	}

	m.mu.Lock()
	m.items = append([]models.Registration{created}, m.items...)
	m.mu.Unlock()
	m.feed.Success(orDefault(msg, "registration saved"))
	return created, nil
}

func (m *Registrations) Update(ctx context.Context, id string, in models.RegistrationInput) (models.Registration, error) {
	var updated models.Registration
	msg, err := m.api.Put(ctx, "/registrations/"+id, in, &updated)
	if err != nil {
		m.feed.Error(failureMessage(err, "failed to update registration"))
		return models.Registration{}, err
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
		return models.Registration{}, fmt.Errorf("update registration %s: %w", id, ErrNotInMirror)
	}
	m.feed.Success(orDefault(msg, "registration updated"))
	return updated, nil
}

func (m *Registrations) Delete(ctx context.Context, id string) error {
	if _, err := m.api.Delete(ctx, "/registrations/"+id); err != nil {
		m.feed.Error(failureMessage(err, "failed to delete registration"))
		return err
	}

	m.mu.Lock()
	kept := m.items[:0]
	for _, reg := range m.items {
		if reg.ID != id {
			kept = append(kept, reg)
		}
	}
	m.items = kept
	m.mu.Unlock()
	m.feed.Success("registration deleted")
	return nil
}
