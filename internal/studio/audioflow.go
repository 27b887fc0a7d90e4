package studio

import (
	"context"
	"fmt"
	"strings"

	"github.com/flipart/flipart/internal/audio"
	"github.com/flipart/flipart/internal/gateway"
)

// StageAudio stages an uploaded clip for analysis. Staging a new clip
// discards any previous analysis result.
func (s *Studio) StageAudio(clip audio.Clip) {
	s.mu.Lock()
	s.staged = &clip
	s.analysis = nil
	s.mu.Unlock()

	s.logger.Debug("audio staged", "name", clip.Name, "bytes", len(clip.Data))
}

// ClearAudio discards the staged clip and any analysis result.
func (s *Studio) ClearAudio() {
	s.mu.Lock()
	s.staged = nil
	s.analysis = nil
	s.mu.Unlock()
}

// StagedAudio returns the staged clip and whether one exists.
func (s *Studio) StagedAudio() (audio.Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staged == nil {
		return audio.Clip{}, false
	}
	return *s.staged, true
}

// Analysis returns the most recent analysis result and whether one exists.
func (s *Studio) Analysis() (audio.Analysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return audio.Analysis{}, false
	}
	return *s.analysis, true
}

// EnhanceAudio runs the staged clip through the gateway's textual
// analysis. The result's original and enhanced references both point at
// the unmodified source bytes - enhancement is simulated, the value of the
// call is the description and transcription.
func (s *Studio) EnhanceAudio(ctx context.Context) (audio.Analysis, error) {
	s.mu.Lock()
	clip := s.staged
	s.mu.Unlock()

	if clip == nil {
		return audio.Analysis{}, ErrNoAudioStaged
	}

	if !s.audioGuard.TryEnter() {
		return audio.Analysis{}, ErrBusy
	}
	if s.Profile() == nil {
		s.audioGuard.Abort()
		return audio.Analysis{}, ErrSignedOut
	}
	exitMsg := ""
	defer func() { s.audioGuard.Exit(exitMsg) }()

	req := gateway.Request{
		System: audio.SystemInstruction,
		Messages: []gateway.Message{
			gateway.NewUserMessage(
				gateway.InlineDataPart(clip.Data, clip.MIMEType),
				gateway.TextPart(audio.EnhanceInstruction),
			),
		},
	}

	text, err := s.gw.GenerateText(ctx, req)
	if err != nil {
		exitMsg = err.Error()
		if exitMsg == "" {
			exitMsg = genericAudioError
		}
		s.logger.Error("audio analysis failed", "error", err)
		return audio.Analysis{}, fmt.Errorf("analyzing audio: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		text = audio.FallbackTranscription
	}

	ref := gateway.EncodeDataURL(clip.Data, clip.MIMEType)
	result := audio.Analysis{
		OriginalRef:   ref,
		EnhancedRef:   ref,
		Transcription: text,
	}

	s.mu.Lock()
	s.analysis = &result
	s.mu.Unlock()

	s.logger.Info("audio analysis complete", "name", clip.Name)
	return result, nil
}
