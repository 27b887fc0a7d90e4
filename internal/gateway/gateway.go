// Package gateway defines the provider-agnostic boundary to the generative
// AI service and the request shape the workflows speak.
//
// The workflows never import a provider SDK directly: they build a Request
// out of ordered Messages whose content is a closed set of Part variants
// (text or inline binary data), and hand it to a Gateway. The genkit-backed
// client in this package is the production implementation; tests use the
// scripted gateway in internal/testutil.
package gateway

import "context"

// Gateway is the boundary to the generative AI service.
//
// Interfaces are defined by the consumer: the studio workflows need exactly
// these two calls. Implementations must be safe for concurrent use.
type Gateway interface {
	// GenerateText runs a multi-turn, multimodal text generation request
	// and returns the model's text reply. An empty reply with a nil error
	// is possible and is the caller's problem to fall back from.
	GenerateText(ctx context.Context, req Request) (string, error)

	// GenerateImage synthesizes a single image for the prompt and returns
	// it as a data URL reference.
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}

// Request is an ordered, role-alternating, multi-part generation request.
type Request struct {
	// System is an optional free-text system instruction.
	System string

	// Messages is the ordered conversation context. The last entry is the
	// turn being submitted and always carries the user role.
	Messages []Message
}

// ImageRequest describes a single image-synthesis call.
type ImageRequest struct {
	Prompt      string
	AspectRatio string // one of the gallery aspect ratios, e.g. "1:1"
}
