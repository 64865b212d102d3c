package backend_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/academyhq/academy-console/backend"
)

type staticTokens struct {
	token string
	ok    bool
}

func (s staticTokens) Token() (string, bool) { return s.token, s.ok }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetInjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"tok-123", true}, nil, discardLogger())

	var out []struct{}
	if err := client.Get(context.Background(), "/players", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestRejectsLocallyWithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"", false}, nil, discardLogger())

	err := client.Get(context.Background(), "/players", &struct{}{})
	if !errors.Is(err, backend.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if called {
		t.Error("no request may reach the network with a dead session")
	}
}

func TestUnauthorizedRunsTeardownHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tornDown := false
	client := backend.NewClient(srv.URL, staticTokens{"tok", true}, func() { tornDown = true }, discardLogger())

	err := client.Get(context.Background(), "/players", &struct{}{})
	if !errors.Is(err, backend.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if !tornDown {
		t.Error("401 must invoke the teardown hook")
	}
}

func TestValidationFailureCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "birth year is required"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"tok", true}, nil, discardLogger())

	_, err := client.Post(context.Background(), "/players", map[string]string{"fullName": "Ali"}, nil)
	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != "birth year is required" {
		t.Errorf("server message lost: %q", reqErr.Message)
	}
	if reqErr.Status != http.StatusBadRequest {
		t.Errorf("status lost: %d", reqErr.Status)
	}
}

func TestValidationFailureWithoutMessageGetsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"tok", true}, nil, discardLogger())

	_, err := client.Post(context.Background(), "/players", nil, nil)
	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message == "" {
		t.Error("a missing server error string must fall back to a generic message")
	}
}

func TestServerFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"tok", true}, nil, discardLogger())

	err := client.Get(context.Background(), "/dashboard", &struct{}{})
	if !errors.Is(err, backend.ErrServerFault) {
		t.Fatalf("expected ErrServerFault, got %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	// A closed server gives a connection error, not an HTTP status.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"tok", true}, nil, discardLogger())

	err := client.Get(context.Background(), "/players", &struct{}{})
	if !errors.Is(err, backend.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestDecodesEnvelopeAndBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wrapped":
			w.Write([]byte(`{"data": [{"name": "Ali"}], "message": "ok"}`))
		case "/bare":
			w.Write([]byte(`[{"name": "Omar"}]`))
		}
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"tok", true}, nil, discardLogger())

	var wrapped []struct {
		Name string `json:"name"`
	}
	if err := client.Get(context.Background(), "/wrapped", &wrapped); err != nil {
		t.Fatalf("wrapped: %v", err)
	}
	if len(wrapped) != 1 || wrapped[0].Name != "Ali" {
		t.Errorf("wrapped payload decoded wrong: %+v", wrapped)
	}

	var bare []struct {
		Name string `json:"name"`
	}
	if err := client.Get(context.Background(), "/bare", &bare); err != nil {
		t.Fatalf("bare: %v", err)
	}
	if len(bare) != 1 || bare[0].Name != "Omar" {
		t.Errorf("bare payload decoded wrong: %+v", bare)
	}
}

func TestMutationSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"_id": "p1"}, "message": "player added successfully"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"tok", true}, nil, discardLogger())

	var created struct {
		ID string `json:"_id"`
	}
	msg, err := client.Post(context.Background(), "/players", map[string]string{}, &created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "player added successfully" {
		t.Errorf("server message lost: %q", msg)
	}
	if created.ID != "p1" {
		t.Errorf("canonical entity lost: %+v", created)
	}
}

func TestAnonymousLoginSkipsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"token": "t", "user": {"id": "1"}}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, staticTokens{"", false}, nil, discardLogger())

	var out struct {
		Token string `json:"token"`
	}
	if _, err := client.PostAnonymous(context.Background(), "/auth/login", map[string]string{}, &out); err != nil {
		t.Fatalf("login must work without a session: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("login must not carry a bearer header, got %q", gotAuth)
	}
	if out.Token != "t" {
		t.Errorf("login payload decoded wrong: %+v", out)
	}
}
