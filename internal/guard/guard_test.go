package guard

import (
	"sync"
	"testing"
)

func TestTryEnter(t *testing.T) {
	t.Run("admits when idle", func(t *testing.T) {
		var g Guard
		if !g.TryEnter() {
			t.Fatal("TryEnter() = false on idle guard")
		}
		if !g.Busy() {
			t.Error("Busy() = false after TryEnter")
		}
	})

	t.Run("refuses while busy", func(t *testing.T) {
		var g Guard
		g.TryEnter()
		if g.TryEnter() {
			t.Fatal("TryEnter() = true on busy guard")
		}
	})

	t.Run("keeps previous error until an outcome replaces it", func(t *testing.T) {
		var g Guard
		g.TryEnter()
		g.Exit("boom")
		g.TryEnter()
		if got := g.LastError(); got != "boom" {
			t.Errorf("LastError() = %q after re-enter, want %q", got, "boom")
		}
		g.Exit("")
		if got := g.LastError(); got != "" {
			t.Errorf("LastError() = %q after successful Exit, want empty", got)
		}
	})
}

func TestExit(t *testing.T) {
	t.Run("releases guard", func(t *testing.T) {
		var g Guard
		g.TryEnter()
		g.Exit("")
		if g.Busy() {
			t.Error("Busy() = true after Exit")
		}
		if !g.TryEnter() {
			t.Error("TryEnter() = false after Exit")
		}
	})

	t.Run("records error", func(t *testing.T) {
		var g Guard
		g.TryEnter()
		g.Exit("gateway unavailable")
		if got := g.LastError(); got != "gateway unavailable" {
			t.Errorf("LastError() = %q, want %q", got, "gateway unavailable")
		}
	})
}

func TestAbort(t *testing.T) {
	var g Guard
	g.TryEnter()
	g.Exit("gateway unavailable")

	g.TryEnter()
	g.Abort()
	if g.Busy() {
		t.Error("Busy() = true after Abort")
	}
	if got := g.LastError(); got != "gateway unavailable" {
		t.Errorf("LastError() = %q after Abort, want the prior error kept", got)
	}
	if !g.TryEnter() {
		t.Error("TryEnter() = false after Abort")
	}
}

func TestClearError(t *testing.T) {
	var g Guard
	g.TryEnter()
	g.Exit("boom")
	g.ClearError()
	if got := g.LastError(); got != "" {
		t.Errorf("LastError() = %q after ClearError, want empty", got)
	}
}

func TestSnapshot(t *testing.T) {
	var g Guard
	g.TryEnter()
	s := g.Snapshot()
	if !s.Busy || s.LastError != "" {
		t.Errorf("Snapshot() = %+v, want busy with no error", s)
	}
	g.Exit("failed")
	s = g.Snapshot()
	if s.Busy || s.LastError != "failed" {
		t.Errorf("Snapshot() = %+v, want idle with error", s)
	}
}

// Exactly one of N concurrent entrants may win the guard.
func TestTryEnterConcurrent(t *testing.T) {
	var g Guard
	const n = 64

	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryEnter() {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if won != 1 {
		t.Errorf("winners = %d, want 1", won)
	}
}
