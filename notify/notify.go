// Package notify is the console's transient notification feed. Every
// mutation outcome and fetch warning lands here; the UI drains it and
// shows toasts. Notices are also logged, so the feed being ignored never
// hides a failure.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notice struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const maxPending = 100

type Feed struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	logger *slog.Logger
	items  []Notice
}

func NewFeed(clock clockwork.Clock, logger *slog.Logger) *Feed {
	return &Feed{clock: clock, logger: logger}
}

func (f *Feed) Success(message string) { f.push(LevelSuccess, message) }
func (f *Feed) Warning(message string) { f.push(LevelWarning, message) }
func (f *Feed) Error(message string)   { f.push(LevelError, message) }

func (f *Feed) push(level Level, message string) {
	if message == "" {
		return
	}
	switch level {
	case LevelError:
		f.logger.Error(message)
	case LevelWarning:
		f.logger.Warn(message)
	default:
		f.logger.Info(message)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		At:      f.clock.Now(),
	})
	if len(f.items) > maxPending {
		f.items = f.items[len(f.items)-maxPending:]
	}
}

// Drain hands back everything pending and clears the feed.
func (f *Feed) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items
	f.items = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}
