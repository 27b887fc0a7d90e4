package gateway

// Role identifies the author of a message.
type Role string

const (
	// RoleUser marks content submitted by the user.
	RoleUser Role = "user"

	// RoleModel marks content produced by the model.
	RoleModel Role = "model"
)

// Part is one unit of message content: either text or inline binary data
// with a MIME type. The two variants are mutually exclusive; use the
// constructors rather than building Part values by hand.
type Part struct {
	// Text holds the text content for text parts.
	Text string

	// Data holds the raw payload for inline binary parts.
	Data []byte

	// MIMEType describes Data, e.g. "image/png" or "audio/mpeg".
	// Empty for text parts.
	MIMEType string
}

// TextPart returns a text content part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// InlineDataPart returns an inline binary content part.
func InlineDataPart(data []byte, mimeType string) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// IsText reports whether p is a text part.
func (p Part) IsText() bool {
	return p.MIMEType == ""
}

// IsInlineData reports whether p carries inline binary data.
func (p Part) IsInlineData() bool {
	return p.MIMEType != ""
}

// Message is one ordered entry in a Request: a role plus its content parts.
type Message struct {
	Role  Role
	Parts []Part
}

// NewUserMessage builds a user message from the given parts.
func NewUserMessage(parts ...Part) Message {
	return Message{Role: RoleUser, Parts: parts}
}

// NewModelMessage builds a model message from the given parts.
func NewModelMessage(parts ...Part) Message {
	return Message{Role: RoleModel, Parts: parts}
}
