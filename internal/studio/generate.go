package studio

import (
	"context"
	"fmt"
	"strings"

	"github.com/flipart/flipart/internal/gallery"
	"github.com/flipart/flipart/internal/gateway"
)

// GenerateImage drives one image-synthesis request. On success the new
// artifact is prepended to the history and the history is persisted. On
// gateway failure the error message lands in the workflow's last-error
// state and the history is left unchanged. Exactly one gateway call per
// invocation; no retries.
func (s *Studio) GenerateImage(ctx context.Context, prompt string, ratio gallery.AspectRatio) (gallery.Artifact, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return gallery.Artifact{}, ErrEmptyInput
	}
	if !ratio.Valid() {
		return gallery.Artifact{}, ErrInvalidAspectRatio
	}

	if !s.genGuard.TryEnter() {
		return gallery.Artifact{}, ErrBusy
	}
	if s.Profile() == nil {
		// Validation refusal, not an outcome: the prior error stays visible.
		s.genGuard.Abort()
		return gallery.Artifact{}, ErrSignedOut
	}
	exitMsg := ""
	defer func() { s.genGuard.Exit(exitMsg) }()

	ref, err := s.gw.GenerateImage(ctx, gateway.ImageRequest{
		Prompt:      prompt,
		AspectRatio: string(ratio),
	})
	if err != nil {
		exitMsg = err.Error()
		if exitMsg == "" {
			exitMsg = genericGenerationError
		}
		s.logger.Error("image generation failed", "error", err)
		return gallery.Artifact{}, fmt.Errorf("generating image: %w", err)
	}

	artifact := gallery.NewArtifact(ref, prompt, ratio)
	s.history.Prepend(artifact)
	s.persistHistory()

	s.logger.Info("image generated",
		"artifact_id", artifact.ID,
		"aspect_ratio", ratio,
		"history_len", s.history.Len())
	return artifact, nil
}
