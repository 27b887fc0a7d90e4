package studio

import (
	"context"
	"fmt"
	"strings"

	"github.com/flipart/flipart/internal/chat"
)

// SendMessage drives one conversational turn.
//
// Once validation passes, the staged attachment is consumed by this send
// regardless of how the gateway call turns out. The request is built from
// the log as it existed before this turn, the user message is appended
// before the gateway resolves, and the assistant's reply - or a fixed
// fallback when the gateway returns nothing, or a fixed apology when it
// fails - is appended after. Gateway failures are absorbed into the
// transcript rather than surfaced as an error state, so the log is always
// the complete record of what the user saw.
//
// The returned string is the assistant text that was appended.
func (s *Studio) SendMessage(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	hasAttachment := s.pending != nil
	s.mu.Unlock()

	if text == "" && !hasAttachment {
		return "", ErrEmptyInput
	}

	if !s.chatGuard.TryEnter() {
		return "", ErrBusy
	}

	// Read the profile after entering the guard so a sign-out racing this
	// send cannot slip a turn through as if signed in.
	s.mu.Lock()
	profile := s.profile
	s.mu.Unlock()
	if profile == nil {
		s.chatGuard.Abort()
		return "", ErrSignedOut
	}

	// Conversation errors live in the transcript, never in lastError.
	defer s.chatGuard.Exit("")

	// Snapshot and clear the staging: the attachment is consumed by this
	// send regardless of how the gateway call turns out.
	s.mu.Lock()
	attachmentRef := ""
	if s.pending != nil {
		attachmentRef = s.pending.URL
		s.pending = nil
	}
	s.mu.Unlock()

	// Build from the log as it exists before this turn. An encoding
	// failure aborts the send with the log untouched.
	req, err := chat.BuildRequest(
		s.log.Messages(),
		text,
		attachmentRef,
		chat.SystemInstruction(profile.DisplayName),
	)
	if err != nil {
		s.logger.Error("building conversation request failed", "error", err)
		return "", fmt.Errorf("building request: %w", err)
	}

	// Optimistic append: the user sees their turn before the reply lands.
	s.log.Append(chat.Message{
		Role:       chat.RoleUser,
		Text:       text,
		Attachment: attachmentRef,
	})

	reply, err := s.gw.GenerateText(ctx, req)
	switch {
	case err != nil:
		s.logger.Error("conversation turn failed", "error", err)
		reply = chat.ErrorReply
	case strings.TrimSpace(reply) == "":
		reply = chat.FallbackEmptyReply
	}

	s.log.Append(chat.Message{Role: chat.RoleAssistant, Text: reply})

	s.logger.Debug("conversation turn complete",
		"log_len", s.log.Len(),
		"with_attachment", attachmentRef != "")
	return reply, nil
}
