package stub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jasvanth78/feedbackforntend/internal/auth"
	"github.com/Jasvanth78/feedbackforntend/internal/config"
	"github.com/Jasvanth78/feedbackforntend/internal/model"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:      "test-secret",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: time.Hour,
	}
}

func doReq(t *testing.T, method, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	app := httptest.NewServer(NewServer(testConfig()).Router())
	defer app.Close()

	resp := doReq(t, http.MethodGet, app.URL+"/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	app := httptest.NewServer(NewServer(testConfig()).Router())
	defer app.Close()

	// No token at all.
	resp := doReq(t, http.MethodGet, app.URL+"/api/feedback/active", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	// Token signed with another secret.
	forged, err := auth.NewAccessToken("other-secret", "test-issuer", time.Hour, auth.Claims{UserID: "u1", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	resp = doReq(t, http.MethodGet, app.URL+"/api/feedback/active", forged)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d", resp.StatusCode)
	}
}

func TestAdminOnlyUsesStoredRole(t *testing.T) {
	srv := NewServer(testConfig())
	admin, err := srv.SeedUser("Admin", "admin@demo.local", "pw", model.RoleAdmin)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	other, err := srv.SeedUser("Other", "other@demo.local", "pw", model.RoleAdmin)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	app := httptest.NewServer(srv.Router())
	defer app.Close()

	token, err := auth.NewAccessToken("test-secret", "test-issuer", time.Hour, auth.Claims{UserID: admin.ID, Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	resp := doReq(t, http.MethodGet, app.URL+"/api/users", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// Demote the acting user behind the token's back; the stored role wins.
	srv.mu.Lock()
	srv.findUserByID(admin.ID).User.Role = model.RoleUser
	srv.mu.Unlock()

	resp = doReq(t, http.MethodGet, app.URL+"/api/users", token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 after demotion, got %d", resp.StatusCode)
	}

	// A deleted user's token is dead too.
	otherToken, err := auth.NewAccessToken("test-secret", "test-issuer", time.Hour, auth.Claims{UserID: other.ID, Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	srv.mu.Lock()
	srv.users = srv.users[:1]
	srv.mu.Unlock()
	resp = doReq(t, http.MethodGet, app.URL+"/api/users", otherToken)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted user, got %d", resp.StatusCode)
	}
}
