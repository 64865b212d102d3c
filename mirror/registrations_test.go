package mirror_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/academyhq/academy-console/backend"
	"github.com/academyhq/academy-console/mirror"
	"github.com/academyhq/academy-console/notify"
)

func newRegistrationMirror(t *testing.T, handler http.Handler) (*mirror.Registrations, *notify.Feed, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	feed := newFeed()
	api := backend.NewClient(srv.URL, fixedToken{}, nil, discardLogger())
	return mirror.NewRegistrations(api, feed, discardLogger()), feed, srv.Close
}

func TestFetchDecodesBothRelationShapes(t *testing.T) {
	// One record embeds the player object, the other carries a bare
	// playerId string. Both must land with a resolved player reference.
	m, _, closeSrv := newRegistrationMirror(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"_id": "r1", "player": {"_id": "p1", "fullName": "Ali Hassan"}, "hasPaid": true, "hasSubmittedDocs": true, "amount": 500},
			{"_id": "r2", "playerId": "p2", "hasPaid": false, "hasSubmittedDocs": false, "amount": "500"}
		]}`))
	}))
	defer closeSrv()

	if err := m.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := m.Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected both records, got %+v", got)
	}
	if got[0].Player == nil || got[0].Player.ID != "p1" || got[0].Player.FullName != "Ali Hassan" {
		t.Errorf("embedded relation decoded wrong: %+v", got[0].Player)
	}
	if got[1].Player == nil || got[1].Player.ID != "p2" {
		t.Errorf("bare id relation decoded wrong: %+v", got[1].Player)
	}
	if got[1].Amount != 500 {
		t.Errorf("string amount decoded wrong: %v", got[1].Amount)
	}
}

func TestFetchDropsUnresolvableRelationsWithWarning(t *testing.T) {
	m, feed, closeSrv := newRegistrationMirror(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"_id": "r1", "player": {"_id": "p1", "fullName": "Ali Hassan"}, "hasPaid": true, "hasSubmittedDocs": true, "amount": 500},
			{"_id": "r2", "player": null, "hasPaid": true, "hasSubmittedDocs": true, "amount": 500},
			{"_id": "r3", "hasPaid": false, "hasSubmittedDocs": false, "amount": 0}
		]`))
	}))
	defer closeSrv()

	if err := m.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := m.Snapshot()
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("broken rows must be hidden, not kept: %+v", got)
	}

	notices := feed.Drain()
	if len(notices) != 1 || notices[0].Level != notify.LevelWarning {
		t.Fatalf("expected one warning notice, got %+v", notices)
	}
	if !strings.Contains(notices[0].Message, "2 registration") {
		t.Errorf("warning should count the hidden rows: %q", notices[0].Message)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m, _, closeSrv := newRegistrationMirror(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id": "r1", "playerId": "p1", "hasPaid": false, "hasSubmittedDocs": false, "amount": 0}]`))
	}))
	defer closeSrv()

	if err := m.FetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	first := m.Snapshot()
	first[0].HasPaid = true

	second := m.Snapshot()
	if second[0].HasPaid {
		t.Error("mutating a snapshot must not reach the mirror")
	}
}
