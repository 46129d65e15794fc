package repository_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Jasvanth78/feedbackforntend/internal/api"
	"github.com/Jasvanth78/feedbackforntend/internal/config"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
	"github.com/Jasvanth78/feedbackforntend/internal/repository"
	"github.com/Jasvanth78/feedbackforntend/internal/session"
	"github.com/Jasvanth78/feedbackforntend/internal/stub"
)

const testPassword = "dev-password"

// startStub runs the in-memory API double with an admin and a regular user
// seeded.
func startStub(t *testing.T) (*stub.Server, string, model.User, model.User) {
	t.Helper()
	srv := stub.NewServer(config.Config{
		JWTSecret:      "test-secret",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: time.Hour,
	})
	admin, err := srv.SeedUser("Admin", "admin@demo.local", testPassword, model.RoleAdmin)
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	user, err := srv.SeedUser("Bob", "bob@demo.local", testPassword, model.RoleUser)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	app := httptest.NewServer(srv.Router())
	t.Cleanup(app.Close)
	return srv, app.URL, admin, user
}

// login builds a client with its own session file and logs in as email.
func login(t *testing.T, baseURL, email string) (*api.Client, *session.Store) {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("session open: %v", err)
	}
	cfg := config.Config{APIBaseURL: baseURL, HTTPTimeout: 5 * time.Second}
	client := api.NewClient(cfg, store)
	account := repository.NewAccountRepo(client, store)
	if _, err := account.Login(context.Background(), email, testPassword); err != nil {
		t.Fatalf("login as %s: %v", email, err)
	}
	return client, store
}

// countingClient points at a server that only counts requests, for asserting
// that local validation never touches the network.
func countingClient(t *testing.T) (*api.Client, *session.Store, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	app := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(app.Close)

	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("session open: %v", err)
	}
	if err := store.Save(session.Session{Token: "opaque-token", User: model.User{ID: "self"}}); err != nil {
		t.Fatalf("session save: %v", err)
	}
	cfg := config.Config{APIBaseURL: app.URL, HTTPTimeout: 5 * time.Second}
	return api.NewClient(cfg, store), store, &calls
}
