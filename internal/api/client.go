package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Jasvanth78/feedbackforntend/internal/auth"
	"github.com/Jasvanth78/feedbackforntend/internal/config"
	"github.com/Jasvanth78/feedbackforntend/internal/session"
)

// Client issues JSON calls against the configured API base URL. It attaches
// the session's bearer token on authenticated calls and folds every failure
// into the ValidationError/AuthError/ServerError/NetworkError taxonomy. It
// never retries and never caches.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

func NewClient(cfg config.Config, sess *session.Store) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		session: sess,
	}
}

// Do performs one API call. When body is non-nil it is sent as JSON; when out
// is non-nil the 2xx response body is decoded into it.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, authenticated bool, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	if authenticated {
		token := c.session.Token()
		if token == "" {
			return &AuthError{Message: "not logged in"}
		}
		// Catch a stale token before spending a round trip on it.
		if claims, err := auth.PeekClaims(token); err == nil && auth.Expired(claims, time.Now()) {
			return &AuthError{Message: "session expired, please log in again"}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Message: serverMessage(data, "invalid or expired token")}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &ServerError{Status: resp.StatusCode, Message: serverMessage(data, http.StatusText(resp.StatusCode))}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body. The
// API answers either {"error": "..."} or {"message": "..."}.
func serverMessage(data []byte, fallback string) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fallback
}
