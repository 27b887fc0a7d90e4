package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flipart/flipart/internal/config"
	"github.com/flipart/flipart/internal/export"
	"github.com/flipart/flipart/internal/gallery"
	"github.com/flipart/flipart/internal/studio"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the art assistant",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	s, cfg, _, err := setup(context.Background())
	if err != nil {
		return err
	}

	if s.Profile() == nil {
		return requireSignIn(studio.ErrSignedOut)
	}

	fmt.Printf("Chatting as %s. Type /help for commands, /quit to leave.\n\n", s.Profile().DisplayName)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt := "> "
		if att, ok := s.PendingAttachment(); ok {
			prompt = fmt.Sprintf("[attached: %q] > ", att.Prompt)
		}
		fmt.Print(prompt)

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, cmdErr := runChatCommand(s, cfg, line)
			if cmdErr != nil {
				fmt.Fprintln(os.Stderr, cmdErr)
			}
			if quit {
				return nil
			}
			continue
		}

		ctx, cancel := callCtx(context.Background())
		reply, err := s.SendMessage(ctx, line)
		cancel()
		switch {
		case errors.Is(err, studio.ErrBusy):
			continue
		case errors.Is(err, studio.ErrEmptyInput):
			continue
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		fmt.Printf("\n%s\n\n", reply)
	}
}

// runChatCommand handles slash commands. Returns true when the REPL
// should exit.
func runChatCommand(s *studio.Studio, cfg *config.Config, line string) (bool, error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/quit", "/exit":
		return true, nil

	case "/help":
		fmt.Println(`/attach <n>  attach the nth gallery image to the next message
/detach      discard the staged attachment
/gallery     list generated images
/export <n>  save the nth gallery image
/clear       reset the conversation
/quit        leave the chat`)
		return false, nil

	case "/clear":
		s.ClearConversation()
		fmt.Println("Conversation cleared.")
		return false, nil

	case "/detach":
		s.ClearAttachment()
		return false, nil

	case "/gallery":
		for i, a := range s.History() {
			fmt.Printf("%2d. [%s] %q\n", i+1, a.AspectRatio, a.Prompt)
		}
		return false, nil

	case "/attach":
		a, err := nthArtifact(s, arg)
		if err != nil {
			return false, err
		}
		if err := s.StageAttachment(a.ID); err != nil {
			return false, err
		}
		fmt.Printf("Attached %q to your next message.\n", a.Prompt)
		return false, nil

	case "/export":
		a, err := nthArtifact(s, arg)
		if err != nil {
			return false, err
		}
		path, err := export.Save(cfg.ExportDir(), a.URL)
		if err != nil {
			return false, err
		}
		fmt.Printf("Saved to %s\n", path)
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s (try /help)", name)
	}
}

func nthArtifact(s *studio.Studio, arg string) (gallery.Artifact, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return gallery.Artifact{}, fmt.Errorf("expected a gallery number, got %q", arg)
	}
	history := s.History()
	if n > len(history) {
		return gallery.Artifact{}, fmt.Errorf("no image #%d (gallery holds %d)", n, len(history))
	}
	return history[n-1], nil
}
