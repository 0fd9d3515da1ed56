// Package storage provides the persisted key-value state behind the UI:
// theme preference and saved dashboards. Persistence is best-effort; a
// store that cannot read or write falls back to in-memory behavior and
// the UI never sees the failure.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mbrandao/shipchat/internal/logger"
)

// Keys used by the UI layer
const (
	KeyTheme      = "theme"
	KeyDashboards = "dashboards"
)

// Store is the persistence port injected into the UI layer. Values are
// opaque strings keyed by name. Writes are synchronous and best-effort.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// FileStore persists keys as a single JSON object on disk. Missing or
// corrupt files initialize to an empty state.
type FileStore struct {
	path string
	mu   sync.RWMutex
	data map[string]string
}

// NewFileStore creates a store backed by the file at path, loading any
// existing state.
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]string)
	}
	return s
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key and flushes the state file. Write failures
// are logged at debug and otherwise swallowed.
func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	if err := s.flush(); err != nil {
		logger.Get().Debug().Err(err).Str("key", key).Msg("state write failed")
	}
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// MemStore is an in-memory Store used in tests and as a fallback when no
// state path is available.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key.
func (s *MemStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
}
