package studio

import "errors"

// Workflow refusal sentinels. These are the Go rendition of the silent
// validation short-circuits: callers that want silence ignore them, the
// CLI maps ErrSignedOut to a sign-in prompt. None of them change any
// state and none of them reach the gateway.
var (
	// ErrBusy indicates an operation of the same workflow kind is already
	// in flight.
	ErrBusy = errors.New("workflow already in flight")

	// ErrSignedOut indicates no active session profile; the caller should
	// surface a sign-in prompt.
	ErrSignedOut = errors.New("sign-in required")

	// ErrEmptyInput indicates the primary input was empty or whitespace.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoAudioStaged indicates enhancement was requested with no
	// uploaded clip.
	ErrNoAudioStaged = errors.New("no audio file staged")

	// ErrInvalidAspectRatio indicates an unsupported aspect ratio.
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")
)

// Generic user-facing error strings recorded when the gateway fails
// without a usable message.
const (
	genericGenerationError = "Image generation failed. Please try again."
	genericAudioError      = "Audio analysis failed. Please try again."
)
