package chat

import "fmt"

// Fixed strings the conversation workflow uses. The assistant absorbs
// failures into the transcript, so the error and fallback replies are part
// of the conversational contract, not incidental UI copy.
const (
	// FallbackImagePrompt stands in for empty text on a turn that carries
	// an image attachment.
	FallbackImagePrompt = "Analyze this image."

	// FallbackEmptyReply is appended when the gateway returns empty text.
	FallbackEmptyReply = "I'm sorry, I couldn't process that. Could you try rephrasing?"

	// ErrorReply is appended when the gateway call fails. The transcript
	// stays the complete record of what the user saw.
	ErrorReply = "I'm sorry, something went wrong while handling your message. Please try again."
)

// SystemInstruction returns the fixed system prompt for the conversation
// workflow, personalized with the signed-in user's display name.
func SystemInstruction(displayName string) string {
	return fmt.Sprintf(
		"You are a world-class expert in prompt engineering and art analysis. "+
			"You are assisting %s with their generated artwork. "+
			"Reason over any images in the conversation and give concrete, creative guidance.",
		displayName,
	)
}
