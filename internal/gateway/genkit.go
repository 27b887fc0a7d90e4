package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"google.golang.org/genai"

	"github.com/flipart/flipart/internal/log"
)

// ErrNoImage is returned when an image-synthesis call succeeds but the
// model response contains no media part.
var ErrNoImage = errors.New("model response contains no image")

// GenkitClient implements Gateway over Genkit with the Google AI plugin.
//
// Model names are plain Gemini identifiers (e.g. "gemini-2.5-flash");
// the client adds the plugin prefix when resolving them.
type GenkitClient struct {
	g          *genkit.Genkit
	chatModel  string
	imageModel string
	logger     log.Logger
}

// NewGenkitClient initializes Genkit with the Google AI plugin and returns
// a gateway backed by it. The GEMINI_API_KEY environment variable must be
// set for the plugin to authenticate.
func NewGenkitClient(ctx context.Context, chatModel, imageModel string, logger log.Logger) *GenkitClient {
	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
	return &GenkitClient{
		g:          g,
		chatModel:  chatModel,
		imageModel: imageModel,
		logger:     logger.With("component", "gateway"),
	}
}

// GenerateText implements Gateway.
func (c *GenkitClient) GenerateText(ctx context.Context, req Request) (string, error) {
	messages := make([]*ai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, toGenkitMessage(m))
	}

	opts := []ai.GenerateOption{
		ai.WithModelName("googleai/" + c.chatModel),
		ai.WithMessages(messages...),
	}
	if req.System != "" {
		opts = append(opts, ai.WithSystem(req.System))
	}

	resp, err := genkit.Generate(ctx, c.g, opts...)
	if err != nil {
		return "", fmt.Errorf("generating text: %w", err)
	}

	text := resp.Text()
	c.logger.Debug("text generation complete",
		"model", c.chatModel,
		"context_messages", len(req.Messages),
		"response_length", len(text))
	return text, nil
}

// GenerateImage implements Gateway. The synthesized image is returned as a
// data URL so it can be persisted and re-attached to chat turns directly.
func (c *GenkitClient) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	resp, err := genkit.Generate(ctx, c.g,
		ai.WithModelName("googleai/"+c.imageModel),
		ai.WithPrompt(req.Prompt),
		ai.WithConfig(&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        &genai.ImageConfig{AspectRatio: req.AspectRatio},
		}),
	)
	if err != nil {
		return "", fmt.Errorf("generating image: %w", err)
	}

	for _, part := range resp.Message.Content {
		if part.IsMedia() {
			c.logger.Debug("image generation complete",
				"model", c.imageModel,
				"aspect_ratio", req.AspectRatio,
				"content_type", part.ContentType)
			return part.Text, nil
		}
	}
	return "", ErrNoImage
}

// toGenkitMessage converts a provider-agnostic message into Genkit's shape.
// Inline binary parts travel as base64 data URL media parts.
func toGenkitMessage(m Message) *ai.Message {
	parts := make([]*ai.Part, 0, len(m.Parts))
	for _, p := range m.Parts {
		if p.IsInlineData() {
			parts = append(parts, ai.NewMediaPart(p.MIMEType, EncodeDataURL(p.Data, p.MIMEType)))
			continue
		}
		parts = append(parts, ai.NewTextPart(p.Text))
	}

	if m.Role == RoleModel {
		return ai.NewModelMessage(parts...)
	}
	return ai.NewUserMessage(parts...)
}
