// Package guard provides single-flight execution tracking for workflows.
//
// Each workflow kind (generation, conversation, audio) owns one Guard.
// A Guard admits at most one operation at a time: TryEnter refuses while an
// operation is in flight, and Exit releases the guard and records the
// outcome. The guard is the only concurrency-control primitive the
// workflows need; everything else is serialized by the studio.
package guard

import "sync"

// State is an observable snapshot of a workflow's execution state.
type State struct {
	Busy      bool
	LastError string
}

// Guard tracks the busy state of a single workflow kind.
//
// Guard is safe for concurrent use. The zero value is ready to use.
type Guard struct {
	mu      sync.Mutex
	busy    bool
	lastErr string
}

// TryEnter attempts to mark the guard busy. It returns false and performs
// no state change when an operation is already in flight. Entering leaves
// the recorded error untouched; only a completed operation's Exit
// replaces it.
func (g *Guard) TryEnter() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

// Exit releases the guard and records errMsg as the operation's outcome.
// An empty errMsg marks a successful completion.
func (g *Guard) Exit(errMsg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.busy = false
	g.lastErr = errMsg
}

// Abort releases the guard without recording an outcome. Used when a
// validation check after entry refuses the operation: the refusal must
// leave the previously recorded error visible.
func (g *Guard) Abort() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.busy = false
}

// Busy reports whether an operation is currently in flight.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// LastError returns the error message recorded by the most recent Exit,
// or "" if the last operation succeeded or none has run.
func (g *Guard) LastError() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

// ClearError discards the recorded error without touching the busy flag.
// Used when the UI dismisses an error banner.
func (g *Guard) ClearError() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastErr = ""
}

// Snapshot returns the current observable state.
func (g *Guard) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return State{Busy: g.busy, LastError: g.lastErr}
}
