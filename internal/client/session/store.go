// Package session owns the client-side authentication credential: a bearer
// token acquired on login, persisted across restarts, and cleared on logout.
// No other component touches the credential storage directly.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const tokenFileName = "token"

// Store holds the active credential and mirrors it to a file so the session
// survives a restart. A Store with an empty path is memory-only: everything
// works, nothing survives the process.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// NewStore resolves the default credential file under the user config dir
// (e.g. ~/.config/<appName>/token) and loads any previously persisted
// credential. When the config dir cannot be resolved, the store degrades to
// memory-only instead of failing.
func NewStore(appName string) *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &Store{}
	}
	return NewFileStore(filepath.Join(dir, appName, tokenFileName))
}

// NewFileStore creates a store backed by the given file path, loading the
// credential from it if present.
func NewFileStore(path string) *Store {
	s := &Store{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Acquire makes token the active credential and persists it. The in-memory
// credential is always updated; a persistence failure is reported so the
// caller can warn that the session will not survive a restart.
func (s *Store) Acquire(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	return nil
}

// Clear removes the credential from memory and from durable storage. The file
// is deleted, not blanked, so a logged-out credential cannot be reused.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// Current returns the active credential, or "" when unauthenticated.
func (s *Store) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Persistent reports whether the store is backed by durable storage.
func (s *Store) Persistent() bool {
	return s.path != ""
}
