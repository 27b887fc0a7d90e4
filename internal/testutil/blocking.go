package testutil

import (
	"context"

	"github.com/flipart/flipart/internal/gateway"
)

// BlockingGateway wraps another gateway and holds every call until
// Release is closed. Used to test the single-flight interleaving where a
// second workflow invocation arrives while the first is still pending.
type BlockingGateway struct {
	Inner gateway.Gateway

	// Started receives one value when a call has entered the gateway.
	Started chan struct{}

	// Release is closed by the test to let held calls proceed.
	Release chan struct{}
}

// NewBlockingGateway wraps inner with call-holding behavior.
func NewBlockingGateway(inner gateway.Gateway) *BlockingGateway {
	return &BlockingGateway{
		Inner:   inner,
		Started: make(chan struct{}, 8),
		Release: make(chan struct{}),
	}
}

// GenerateText implements gateway.Gateway.
func (b *BlockingGateway) GenerateText(ctx context.Context, req gateway.Request) (string, error) {
	b.Started <- struct{}{}
	select {
	case <-b.Release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return b.Inner.GenerateText(ctx, req)
}

// GenerateImage implements gateway.Gateway.
func (b *BlockingGateway) GenerateImage(ctx context.Context, req gateway.ImageRequest) (string, error) {
	b.Started <- struct{}{}
	select {
	case <-b.Release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return b.Inner.GenerateImage(ctx, req)
}
