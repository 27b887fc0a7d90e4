// Package studio orchestrates the three generative workflows: image
// generation, the multimodal chat assistant, and audio analysis.
//
// The Studio owns all workflow state - artifact history, conversation log,
// pending attachment, staged audio, session profile - and is the only
// place that mutates it. Each workflow kind has a single-flight guard, so
// the three workflows can run concurrently with each other but never with
// themselves. Persistence is a side effect: history and profile writes go
// through the store fire-and-forget and a write failure never fails the
// workflow that triggered it.
package studio

import (
	"sync"

	"github.com/flipart/flipart/internal/audio"
	"github.com/flipart/flipart/internal/chat"
	"github.com/flipart/flipart/internal/gallery"
	"github.com/flipart/flipart/internal/gateway"
	"github.com/flipart/flipart/internal/guard"
	"github.com/flipart/flipart/internal/log"
	"github.com/flipart/flipart/internal/session"
	"github.com/flipart/flipart/internal/store"
)

// Studio is the workflow orchestration and context-construction layer.
//
// Studio is safe for concurrent use.
type Studio struct {
	gw     gateway.Gateway
	store  *store.Store
	logger log.Logger

	genGuard   guard.Guard
	chatGuard  guard.Guard
	audioGuard guard.Guard

	history *gallery.History
	log     *chat.Log

	mu       sync.Mutex // guards the fields below
	profile  *session.Profile
	pending  *gallery.Artifact // at most one attachment staged for the next turn
	staged   *audio.Clip
	analysis *audio.Analysis
}

// New creates a Studio and loads persisted state. A load failure is
// logged and the studio starts empty; persisted-state problems are data
// loss, never fatal.
func New(gw gateway.Gateway, st *store.Store, logger log.Logger) *Studio {
	s := &Studio{
		gw:      gw,
		store:   st,
		logger:  logger.With("component", "studio"),
		history: gallery.NewHistory(),
		log:     chat.NewLog(),
	}

	state, err := st.Load()
	if err != nil {
		s.logger.Warn("loading persisted state failed, starting empty", "error", err)
		return s
	}
	s.history.SetItems(state.History)
	s.profile = state.Profile
	return s
}

// SignIn establishes the session profile and persists it. Any well-formed
// display name and email are accepted; there is no real authentication.
func (s *Studio) SignIn(displayName, email string) (*session.Profile, error) {
	profile, err := session.NewProfile(displayName, email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	if err := s.store.SaveProfile(profile); err != nil {
		s.logger.Warn("persisting profile failed", "error", err)
	}
	s.logger.Info("signed in", "display_name", profile.DisplayName)
	return profile, nil
}

// SignOut destroys the session profile and clears it from storage.
func (s *Studio) SignOut() {
	s.mu.Lock()
	s.profile = nil
	s.mu.Unlock()

	if err := s.store.ClearProfile(); err != nil {
		s.logger.Warn("clearing stored profile failed", "error", err)
	}
	s.logger.Info("signed out")
}

// Profile returns the active session profile, or nil when anonymous.
func (s *Studio) Profile() *session.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// History returns the artifact history, newest first.
func (s *Studio) History() []gallery.Artifact {
	return s.history.Items()
}

// Artifact returns the artifact with the given id.
func (s *Studio) Artifact(id string) (gallery.Artifact, error) {
	return s.history.Get(id)
}

// Messages returns the conversation log in chronological order.
func (s *Studio) Messages() []chat.Message {
	return s.log.Messages()
}

// ClearConversation resets the conversation log to empty.
func (s *Studio) ClearConversation() {
	s.log.Clear()
	s.logger.Debug("conversation cleared")
}

// StageAttachment stages the identified artifact for inclusion in the
// next outgoing chat turn, replacing any previously staged one.
func (s *Studio) StageAttachment(id string) error {
	a, err := s.history.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.pending = &a
	s.mu.Unlock()

	s.logger.Debug("attachment staged", "artifact_id", id)
	return nil
}

// ClearAttachment discards the staged attachment, if any.
func (s *Studio) ClearAttachment() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// PendingAttachment returns the staged attachment and whether one exists.
func (s *Studio) PendingAttachment() (gallery.Artifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return gallery.Artifact{}, false
	}
	return *s.pending, true
}

// GenerationState returns the generation workflow's observable state.
func (s *Studio) GenerationState() guard.State {
	return s.genGuard.Snapshot()
}

// ConversationState returns the conversation workflow's observable state.
func (s *Studio) ConversationState() guard.State {
	return s.chatGuard.Snapshot()
}

// AudioState returns the audio workflow's observable state.
func (s *Studio) AudioState() guard.State {
	return s.audioGuard.Snapshot()
}

// DismissGenerationError clears the generation workflow's error banner.
func (s *Studio) DismissGenerationError() {
	s.genGuard.ClearError()
}

// DismissAudioError clears the audio workflow's error banner.
func (s *Studio) DismissAudioError() {
	s.audioGuard.ClearError()
}

// persistHistory saves the current history. Fire-and-forget: a storage
// failure is logged and must never crash or fail the triggering workflow.
func (s *Studio) persistHistory() {
	if err := s.store.SaveHistory(s.history.Items()); err != nil {
		s.logger.Warn("persisting history failed", "error", err)
	}
}
