package export

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/flipart/flipart/internal/gateway"
)

func TestFilename(t *testing.T) {
	at := time.UnixMilli(1756700000000)
	got := Filename(at)
	want := "flipart-1756700000000.png"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestSave(t *testing.T) {
	t.Run("writes decoded bytes", func(t *testing.T) {
		dir := t.TempDir()
		payload := []byte("png-bytes")
		ref := gateway.EncodeDataURL(payload, "image/png")

		path, err := Save(dir, ref)
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if matched, _ := regexp.MatchString(`^flipart-\d+\.png$`, filepath.Base(path)); !matched {
			t.Errorf("export name = %q, want flipart-<millis>.png", filepath.Base(path))
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading export: %v", err)
		}
		if string(data) != "png-bytes" {
			t.Errorf("exported bytes = %q", data)
		}
	})

	t.Run("plain locator is refused", func(t *testing.T) {
		if _, err := Save(t.TempDir(), "https://example.com/x.png"); err == nil {
			t.Error("Save() accepted a non-data URL")
		}
	})
}
