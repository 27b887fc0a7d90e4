package gallery

import (
	"errors"
	"fmt"
	"testing"
)

func TestAspectRatioValid(t *testing.T) {
	for _, r := range AspectRatios {
		if !r.Valid() {
			t.Errorf("AspectRatio(%q).Valid() = false", r)
		}
	}
	if AspectRatio("2:1").Valid() {
		t.Error(`AspectRatio("2:1").Valid() = true`)
	}
	if AspectRatio("").Valid() {
		t.Error(`AspectRatio("").Valid() = true`)
	}
}

func TestNewArtifact(t *testing.T) {
	a := NewArtifact("data:image/png;base64,aGk=", "a red fox", AspectSquare)

	if a.ID == "" {
		t.Error("NewArtifact() did not mint an id")
	}
	if a.CreatedAt.IsZero() {
		t.Error("NewArtifact() did not set CreatedAt")
	}
	if a.Prompt != "a red fox" || a.AspectRatio != AspectSquare {
		t.Errorf("NewArtifact() = %+v", a)
	}
}

func TestHistoryPrepend(t *testing.T) {
	h := NewHistory()

	const n = 5
	ids := make(map[string]bool, n)
	for i := range n {
		a := NewArtifact("data:image/png;base64,", fmt.Sprintf("prompt %d", i), AspectSquare)
		h.Prepend(a)
		ids[a.ID] = true
	}

	if h.Len() != n {
		t.Fatalf("Len() = %d, want %d", h.Len(), n)
	}
	if len(ids) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(ids))
	}

	// Newest first: reverse of insertion order.
	items := h.Items()
	for i, a := range items {
		want := fmt.Sprintf("prompt %d", n-1-i)
		if a.Prompt != want {
			t.Errorf("items[%d].Prompt = %q, want %q", i, a.Prompt, want)
		}
	}
}

func TestHistoryGet(t *testing.T) {
	h := NewHistory()
	a := NewArtifact("data:image/png;base64,", "find me", AspectPortrait)
	h.Prepend(a)

	got, err := h.Get(a.ID)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", a.ID, err)
	}
	if got.Prompt != "find me" {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := h.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestHistoryAt(t *testing.T) {
	h := NewHistory()
	h.Prepend(NewArtifact("u", "old", AspectSquare))
	h.Prepend(NewArtifact("u", "new", AspectSquare))

	got, err := h.At(0)
	if err != nil || got.Prompt != "new" {
		t.Errorf("At(0) = %+v, %v; want newest", got, err)
	}
	if _, err := h.At(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("At(2) error = %v, want ErrNotFound", err)
	}
	if _, err := h.At(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("At(-1) error = %v, want ErrNotFound", err)
	}
}

func TestHistoryItemsIsCopy(t *testing.T) {
	h := NewHistory()
	h.Prepend(NewArtifact("u", "original", AspectSquare))

	items := h.Items()
	items[0].Prompt = "mutated"

	got, _ := h.At(0)
	if got.Prompt != "original" {
		t.Error("Items() exposed internal storage")
	}
}

func TestHistorySetItems(t *testing.T) {
	h := NewHistory()
	src := []Artifact{
		NewArtifact("u", "a", AspectSquare),
		NewArtifact("u", "b", AspectSquare),
	}
	h.SetItems(src)

	src[0].Prompt = "mutated"
	got, _ := h.At(0)
	if got.Prompt != "a" {
		t.Error("SetItems() did not copy input")
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}
