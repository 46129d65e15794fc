package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Jasvanth78/feedbackforntend/internal/model"
)

// Session is the durable client-side state: the bearer token and the user
// record it was issued for.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Store keeps the current session in a JSON file so it survives between
// command invocations. A missing file simply means nobody is logged in.
type Store struct {
	path    string
	current *Session
}

// Open loads the session file at path. The store is usable (logged out) when
// the file does not exist yet.
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", path, err)
	}
	if sess.Token != "" {
		store.current = &sess
	}
	return store, nil
}

// Current returns the active session, if any.
func (s *Store) Current() (Session, bool) {
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Save persists sess and makes it the active session.
func (s *Store) Save(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	s.current = &sess
	return nil
}

// Clear removes the session file and forgets the active session.
func (s *Store) Clear() error {
	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
