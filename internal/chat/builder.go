package chat

import (
	"fmt"

	"github.com/flipart/flipart/internal/gateway"
)

// attachmentMIME is the MIME type attachments travel under. Generated
// artifacts are always PNG data URLs.
const attachmentMIME = "image/png"

// BuildRequest serializes the conversation so far plus the just-submitted
// turn into an ordered gateway request.
//
// For each prior message the builder emits one entry: an inline image part
// followed by the message text (or FallbackImagePrompt) when the message
// carried an attachment, otherwise the text alone. After the log it
// appends exactly one user entry for the new turn, attachment first.
//
// The builder never reorders or drops history, so the request grows
// without bound as the conversation does. That growth is documented
// behavior, not something to truncate here.
//
// Attachment references must be decodable data URLs; a plain resource
// locator fails the build without touching any state.
func BuildRequest(history []Message, input, attachment, systemInstruction string) (gateway.Request, error) {
	messages := make([]gateway.Message, 0, len(history)+1)

	for i, m := range history {
		entry, err := toGatewayMessage(m)
		if err != nil {
			return gateway.Request{}, fmt.Errorf("serializing message %d: %w", i, err)
		}
		messages = append(messages, entry)
	}

	turn := make([]gateway.Part, 0, 2)
	if attachment != "" {
		data, _, err := gateway.DecodeDataURL(attachment)
		if err != nil {
			return gateway.Request{}, fmt.Errorf("decoding attachment: %w", err)
		}
		turn = append(turn, gateway.InlineDataPart(data, attachmentMIME))
	}
	if input == "" {
		input = FallbackImagePrompt
	}
	turn = append(turn, gateway.TextPart(input))
	messages = append(messages, gateway.NewUserMessage(turn...))

	return gateway.Request{
		System:   systemInstruction,
		Messages: messages,
	}, nil
}

// toGatewayMessage converts one logged turn into its wire entry.
func toGatewayMessage(m Message) (gateway.Message, error) {
	role := gateway.RoleUser
	if m.Role == RoleAssistant {
		role = gateway.RoleModel
	}

	if m.Attachment == "" {
		return gateway.Message{Role: role, Parts: []gateway.Part{gateway.TextPart(m.Text)}}, nil
	}

	data, _, err := gateway.DecodeDataURL(m.Attachment)
	if err != nil {
		return gateway.Message{}, err
	}

	text := m.Text
	if text == "" {
		text = FallbackImagePrompt
	}
	return gateway.Message{
		Role: role,
		Parts: []gateway.Part{
			gateway.InlineDataPart(data, attachmentMIME),
			gateway.TextPart(text),
		},
	}, nil
}
