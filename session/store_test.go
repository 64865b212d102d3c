package session_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/session"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	clock := clockwork.NewFakeClock()
	store := session.NewStore(path, clock, discardLogger())

	if store.Authenticated() {
		t.Fatal("fresh store must be anonymous")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("fresh store must have no user")
	}

	admin := models.User{ID: "u1", Name: "Admin", Role: models.RoleAdmin}
	store.Login(admin, signedToken(t, clock.Now().Add(time.Hour)))

	if !store.Authenticated() {
		t.Fatal("store must be authenticated after login")
	}
	got, ok := store.Current()
	if !ok || got.ID != "u1" || got.Role != models.RoleAdmin {
		t.Errorf("current user lost: %+v ok=%v", got, ok)
	}
	if _, ok := store.Token(); !ok {
		t.Error("token must be available while the session is live")
	}

	store.Logout()
	if store.Authenticated() {
		t.Error("store must be anonymous after logout")
	}
	if _, ok := store.Token(); ok {
		t.Error("token must be gone after logout")
	}
}

func TestPersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	clock := clockwork.NewFakeClock()

	first := session.NewStore(path, clock, discardLogger())
	first.Login(models.User{ID: "u1", Role: models.RoleCoach}, signedToken(t, clock.Now().Add(time.Hour)))

	// A new store against the same file picks the session back up.
	second := session.NewStore(path, clock, discardLogger())
	if !second.Authenticated() {
		t.Fatal("rehydrated store must still be authenticated")
	}
	user, _ := second.Current()
	if user.Role != models.RoleCoach {
		t.Errorf("rehydrated user wrong: %+v", user)
	}
}

func TestCorruptFileMeansAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := session.NewStore(path, clockwork.NewFakeClock(), discardLogger())
	if store.Authenticated() {
		t.Error("a corrupt session file must fall back to anonymous")
	}
}

func TestExpiredTokenIsRejectedLocally(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	clock := clockwork.NewFakeClock()
	store := session.NewStore(path, clock, discardLogger())

	store.Login(models.User{ID: "u1", Role: models.RoleAdmin}, signedToken(t, clock.Now().Add(time.Minute)))
	if !store.Authenticated() {
		t.Fatal("token should still be live")
	}

	clock.Advance(2 * time.Minute)

	if _, ok := store.Token(); ok {
		t.Error("expired token must not be handed out")
	}
	if store.Authenticated() {
		t.Error("store with an expired token must read as unauthenticated")
	}
}

func TestOpaqueTokenPassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewStore(path, clockwork.NewFakeClock(), discardLogger())

	store.Login(models.User{ID: "u1"}, "not-a-jwt")

	if _, ok := store.Token(); !ok {
		t.Error("a token the console cannot parse is the upstream's problem, not ours")
	}
}
