// Package session holds the authenticated identity for the console
// process: user, role and upstream bearer token. The state survives
// restarts through a small JSON file, the way the browser app kept it in
// localStorage.
package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/academyhq/academy-console/models"
)

var ErrNotAuthenticated = errors.New("no active session")

type Store struct {
	mu     sync.RWMutex
	path   string
	clock  clockwork.Clock
	logger *slog.Logger

	user  *models.User
	token string
}

// NewStore rehydrates the last persisted session, if any. A missing or
// corrupt file means anonymous, never an error.
func NewStore(path string, clock clockwork.Clock, logger *slog.Logger) *Store {
	s := &Store{path: path, clock: clock, logger: logger}
	s.load()
	return s
}

type persistedSession struct {
	User  *models.User `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var p persistedSession
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("discarding unreadable session file", slog.String("path", s.path), slog.Any("error", err))
		return
	}
	s.user = p.User
	s.token = p.Token
}

func (s *Store) persist() {
	p := persistedSession{User: s.user, Token: s.token}
	raw, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("failed to encode session", slog.Any("error", err))
		return
	}
	if dir := filepath.Dir(s.path); dir != "." {
		_ = os.MkdirAll(dir, 0o700)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		s.logger.Error("failed to persist session", slog.String("path", s.path), slog.Any("error", err))
	}
}

// Login transitions the store to authenticated.
func (s *Store) Login(user models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token
	s.persist()
}

// Logout transitions back to anonymous.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.persist()
}

// Teardown is the upstream-401 hook: identical to Logout, named for the
// call sites where the session died rather than ended.
func (s *Store) Teardown() {
	s.logger.Info("session torn down after upstream 401")
	s.Logout()
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token implements backend.TokenSource. An absent or locally-expired
// token reports ok=false so authenticated calls are rejected before any
// network round trip.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.expired(s.token) {
		return "", false
	}
	return s.token, true
}

func (s *Store) Authenticated() bool {
	_, ok := s.Token()
	if !ok {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// expired inspects the token's exp claim without verifying the
// signature. Verification is the upstream's job; the console only wants
// to stop sending requests it knows will bounce. A token without an exp
// claim is treated as live.
func (s *Store) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens pass through; the upstream decides.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(s.clock.Now())
}
