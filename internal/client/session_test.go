package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

func TestSessionSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := LoadSession(path)
	if s.Authenticated() {
		t.Error("Missing file must load as logged out")
	}

	s.Token = "tok-xyz"
	s.User = &core.User{Id: "u1", Email: "admin@zcorner.local", Role: core.RoleAdmin}
	if err := s.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	restored := LoadSession(path)
	if !restored.Authenticated() || restored.Token != "tok-xyz" {
		t.Errorf("Token not restored: %+v", restored)
	}
	if !restored.IsAdmin() {
		t.Errorf("User not restored: %+v", restored.User)
	}
}

func TestSessionClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := LoadSession(path)
	s.Token = "tok-xyz"
	if err := s.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if s.Authenticated() {
		t.Error("Cleared session must be logged out")
	}
	if LoadSession(path).Authenticated() {
		t.Error("Session file should be gone after Clear")
	}
}

func TestSessionCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := &Session{path: path, Token: "x"}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if LoadSession(path).Authenticated() {
		t.Error("Corrupt session file must load as logged out")
	}
}
