// Package gallery provides the generated-image artifact model and the
// ordered history that backs both the generation gallery and the chat
// assistant's context gallery.
package gallery

import (
	"time"

	"github.com/google/uuid"
)

// AspectRatio is the output shape requested for a generated image.
type AspectRatio string

const (
	AspectSquare        AspectRatio = "1:1"
	AspectPortrait      AspectRatio = "3:4"
	AspectLandscape     AspectRatio = "4:3"
	AspectTallPortrait  AspectRatio = "9:16"
	AspectWideLandscape AspectRatio = "16:9"
)

// AspectRatios lists every supported ratio in display order.
var AspectRatios = []AspectRatio{
	AspectSquare,
	AspectPortrait,
	AspectLandscape,
	AspectTallPortrait,
	AspectWideLandscape,
}

// Valid reports whether r is one of the supported ratios.
func (r AspectRatio) Valid() bool {
	for _, known := range AspectRatios {
		if r == known {
			return true
		}
	}
	return false
}

// Artifact is a single generated image. Artifacts are immutable once
// created: the history only ever appends them.
type Artifact struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"` // data URL holding the image bytes
	Prompt      string      `json:"prompt"`
	CreatedAt   time.Time   `json:"createdAt"`
	AspectRatio AspectRatio `json:"aspectRatio"`
}

// NewArtifact mints an artifact with a fresh unique id and the current
// timestamp.
func NewArtifact(url, prompt string, ratio AspectRatio) Artifact {
	return Artifact{
		ID:          uuid.NewString(),
		URL:         url,
		Prompt:      prompt,
		CreatedAt:   time.Now(),
		AspectRatio: ratio,
	}
}
