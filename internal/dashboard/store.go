// Package dashboard persists the history of answered questions so they
// can be replayed later.
package dashboard

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/mbrandao/shipchat/internal/errors"
	"github.com/mbrandao/shipchat/internal/storage"
)

// MaxEntries caps the history list. Older entries are evicted from the
// tail; there is no explicit delete.
const MaxEntries = 100

// Entry records one answered question: the question text (empty for
// answers that arrived without one), the answer, and any chart image.
type Entry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question,omitempty"`
	Answer    string    `json:"answer"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// History manages the persisted dashboard list, most-recent-first.
type History struct {
	store   storage.Store
	mu      sync.RWMutex
	entries []Entry
}

// NewHistory creates a history backed by the given store, loading any
// persisted entries. A missing or corrupt value starts empty.
func NewHistory(store storage.Store) *History {
	h := &History{store: store}

	raw, ok := store.Get(storage.KeyDashboards)
	if !ok {
		return h
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return h
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	h.entries = entries
	return h
}

// Record prepends a new entry for an answered question and persists the
// truncated list. It returns the created entry.
func (h *History) Record(question, answer, image string) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := Entry{
		ID:        uuid.New().String(),
		Question:  question,
		Answer:    answer,
		Image:     image,
		CreatedAt: time.Now(),
	}

	h.entries = append([]Entry{entry}, h.entries...)
	if len(h.entries) > MaxEntries {
		h.entries = h.entries[:MaxEntries]
	}

	h.persist()
	return entry
}

// List returns a copy of all entries, most recent first.
func (h *History) List() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// Find returns the entry with the given id. A missing id (evicted entry
// or cleared list) returns ErrNotFound; callers treat it as a non-fatal
// display state.
func (h *History) Find(id string) (Entry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, apierrors.ErrNotFound
}

// persist writes the list through the storage port. Caller holds the lock.
func (h *History) persist() {
	data, err := json.Marshal(h.entries)
	if err != nil {
		return
	}
	h.store.Set(storage.KeyDashboards, string(data))
}
