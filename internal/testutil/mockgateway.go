// Package testutil provides shared test doubles for the studio workflows.
package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/flipart/flipart/internal/gateway"
)

// MockGateway provides deterministic gateway responses for testing. Text
// requests are matched against registered patterns on the final user
// message; image requests return a canned data URL. Every call is
// recorded for assertion.
//
// Thread-safe for concurrent use.
type MockGateway struct {
	mu sync.Mutex

	textRules    []textRule
	textFallback string
	textErr      error

	imageRef string
	imageErr error

	textCalls  []gateway.Request
	imageCalls []gateway.ImageRequest
}

type textRule struct {
	pattern  string // substring match, case-insensitive
	response string
}

// NewMockGateway creates a mock whose unmatched text calls return fallback
// and whose image calls return imageRef.
func NewMockGateway(fallback, imageRef string) *MockGateway {
	return &MockGateway{textFallback: fallback, imageRef: imageRef}
}

// AddTextResponse registers a pattern-response pair. First match wins.
func (m *MockGateway) AddTextResponse(pattern, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textRules = append(m.textRules, textRule{
		pattern:  strings.ToLower(pattern),
		response: response,
	})
}

// FailText makes every subsequent GenerateText call return err.
func (m *MockGateway) FailText(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textErr = err
}

// FailImage makes every subsequent GenerateImage call return err.
func (m *MockGateway) FailImage(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imageErr = err
}

// GenerateText implements gateway.Gateway.
func (m *MockGateway) GenerateText(_ context.Context, req gateway.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textCalls = append(m.textCalls, req)

	if m.textErr != nil {
		return "", m.textErr
	}

	userText := strings.ToLower(finalUserText(req))
	for _, rule := range m.textRules {
		if strings.Contains(userText, rule.pattern) {
			return rule.response, nil
		}
	}
	return m.textFallback, nil
}

// GenerateImage implements gateway.Gateway.
func (m *MockGateway) GenerateImage(_ context.Context, req gateway.ImageRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imageCalls = append(m.imageCalls, req)

	if m.imageErr != nil {
		return "", m.imageErr
	}
	return m.imageRef, nil
}

// TextCalls returns a copy of all recorded text requests.
func (m *MockGateway) TextCalls() []gateway.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]gateway.Request, len(m.textCalls))
	copy(cp, m.textCalls)
	return cp
}

// ImageCalls returns a copy of all recorded image requests.
func (m *MockGateway) ImageCalls() []gateway.ImageRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]gateway.ImageRequest, len(m.imageCalls))
	copy(cp, m.imageCalls)
	return cp
}

// CallCount returns the total number of gateway calls of both kinds.
func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.textCalls) + len(m.imageCalls)
}

// finalUserText extracts the text of the request's final entry.
func finalUserText(req gateway.Request) string {
	if len(req.Messages) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range req.Messages[len(req.Messages)-1].Parts {
		if p.IsText() {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
