package gallery

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when the requested artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

// History is the ordered list of generated artifacts, newest first.
// It is the single source of truth for the gallery and the chat
// assistant's context gallery.
//
// History is safe for concurrent use. The zero value is NOT useful -
// use NewHistory().
type History struct {
	mu    sync.RWMutex
	items []Artifact
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{items: make([]Artifact, 0)}
}

// SetItems replaces the entire history. Used when loading persisted state.
// Makes a defensive copy to prevent external modification.
func (h *History) SetItems(items []Artifact) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = make([]Artifact, len(items))
	copy(h.items, items)
}

// Prepend inserts a freshly generated artifact at the front, keeping the
// list in reverse-chronological order.
func (h *History) Prepend(a Artifact) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append([]Artifact{a}, h.items...)
}

// Items returns a copy of the history, newest first.
func (h *History) Items() []Artifact {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result := make([]Artifact, len(h.items))
	copy(result, h.items)
	return result
}

// Len returns the number of artifacts.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

// Get returns the artifact with the given id.
func (h *History) Get(id string) (Artifact, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, a := range h.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Artifact{}, ErrNotFound
}

// At returns the artifact at position i, newest first.
func (h *History) At(i int) (Artifact, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if i < 0 || i >= len(h.items) {
		return Artifact{}, ErrNotFound
	}
	return h.items[i], nil
}
