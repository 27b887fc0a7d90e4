// Package cmd wires the flipart CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flipart/flipart/internal/config"
	"github.com/flipart/flipart/internal/gateway"
	"github.com/flipart/flipart/internal/log"
	"github.com/flipart/flipart/internal/store"
	"github.com/flipart/flipart/internal/studio"
)

// gatewayTimeout bounds every gateway call. The underlying service has no
// cancellation of its own; without this bound a hung call would leave its
// workflow guard busy forever.
const gatewayTimeout = 2 * time.Minute

var rootCmd = &cobra.Command{
	Use:   "flipart",
	Short: "flipart - generative art studio for the terminal",
	Long: `flipart generates images from prompts, chats about them with a
multimodal assistant, and analyzes uploaded audio, all through the
Gemini API. Sign in first with "flipart signin".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation drops into chat mode.
		return runChat(cmd, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup builds the studio and its collaborators from configuration.
func setup(ctx context.Context) (*studio.Studio, *config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger := log.New(log.Config{Level: cfg.SlogLevel(), JSON: cfg.LogJSON})

	gw := gateway.NewGenkitClient(ctx, cfg.ChatModel, cfg.ImageModel, logger)
	st := store.New(cfg.StorePath(), logger)

	return studio.New(gw, st, logger), cfg, logger, nil
}

// requireSignIn translates the studio's sign-in signal into CLI guidance.
func requireSignIn(err error) error {
	if errors.Is(err, studio.ErrSignedOut) {
		return fmt.Errorf("you are not signed in; run \"flipart signin --name <name> --email <email>\" first")
	}
	return err
}

// callCtx returns a bounded context for one gateway call.
func callCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, gatewayTimeout)
}
