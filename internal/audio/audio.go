// Package audio provides the staged-clip and analysis-result types for the
// audio workflow.
//
// Enhancement is simulated: the gateway produces a textual analysis and
// transcription of the uploaded clip, and both audio references in the
// result point at the same unmodified source bytes. No signal processing
// happens anywhere in this system.
package audio

// Fixed strings for the audio workflow's single gateway call.
const (
	// SystemInstruction is the persona for audio analysis requests.
	SystemInstruction = "You are an expert AI Audio Engineer."

	// EnhanceInstruction is the fixed request text sent with the clip.
	EnhanceInstruction = "Remove the background noise from this audio recording. " +
		"Describe the quality of the original recording and what was removed, " +
		"then provide a full transcription of any speech."

	// FallbackTranscription is used when the gateway returns empty text.
	FallbackTranscription = "No transcription could be produced for this recording."
)

// Clip is an uploaded audio file staged for analysis.
type Clip struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Analysis is the ephemeral result of one enhancement call. It is replaced
// wholesale by the next analysis and cleared when a new clip is staged.
//
// OriginalRef and EnhancedRef both reference the staged source bytes; the
// "enhanced" audio is the simulated capability described above.
type Analysis struct {
	OriginalRef   string // data URL of the uploaded clip
	EnhancedRef   string // identical to OriginalRef
	Transcription string
}
