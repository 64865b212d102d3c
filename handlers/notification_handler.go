package handlers

import (
	"net/http"

	"github.com/academyhq/academy-console/notify"
)

type NotificationHandler struct {
	feed *notify.Feed
}

func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// Drain hands the pending notices to the UI and clears them; each notice
// is shown exactly once.
func (h *NotificationHandler) Drain(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, jsonResponse{"notifications": h.feed.Drain()}, nil)
}
