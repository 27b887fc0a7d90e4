// Package export turns artifact references into user-facing downloads.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flipart/flipart/internal/gateway"
)

// Filename returns the download name for an export performed at the given
// instant.
func Filename(now time.Time) string {
	return fmt.Sprintf("flipart-%d.png", now.UnixMilli())
}

// Save decodes a binary-image reference and writes it into dir under a
// timestamped download name. It returns the full path written.
func Save(dir, ref string) (string, error) {
	data, _, err := gateway.DecodeDataURL(ref)
	if err != nil {
		return "", fmt.Errorf("decoding image reference: %w", err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(time.Now()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
