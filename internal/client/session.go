package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

// Session is the durable token/user pair restored once at startup, the
// CLI equivalent of the browser's token/user storage keys. The token is
// opaque; no expiry check happens client-side, the server rejects stale
// tokens on use.
type Session struct {
	path string

	Token string     `json:"token"`
	User  *core.User `json:"user,omitempty"`
}

// LoadSession reads the session file; a missing or unreadable file
// yields an empty (logged-out) session, never an error.
func LoadSession(path string) *Session {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, s); err != nil {
		// Corrupt file, treat as logged out.
		return &Session{path: path}
	}
	return s
}

func (s *Session) Authenticated() bool {
	return s.Token != ""
}

func (s *Session) IsAdmin() bool {
	return s.User.IsAdmin()
}

// Save persists the session. The file holds a bearer token, so it is
// written user-readable only.
func (s *Session) Save() error {
	if s.path == "" {
		return errors.New("session has no backing file")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear logs out: drops the in-memory credentials and removes the file.
func (s *Session) Clear() error {
	s.Token = ""
	s.User = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
