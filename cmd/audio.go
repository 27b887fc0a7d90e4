package cmd

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flipart/flipart/internal/audio"
)

var audioCmd = &cobra.Command{
	Use:   "audio <file>",
	Short: "Upload an audio file for enhancement and transcription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, _, _, err := setup(ctx)
		if err != nil {
			return err
		}

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		s.StageAudio(audio.Clip{
			Name:     filepath.Base(path),
			MIMEType: audioMIME(path, data),
			Data:     data,
		})

		fmt.Printf("Analyzing %s...\n", filepath.Base(path))

		reqCtx, cancel := callCtx(ctx)
		defer cancel()

		result, err := s.EnhanceAudio(reqCtx)
		if err != nil {
			return requireSignIn(err)
		}

		fmt.Println()
		fmt.Println("Transcription:")
		fmt.Println(result.Transcription)
		return nil
	},
}

// audioMIME resolves the clip's content type, preferring the file
// extension since http.DetectContentType does not know most audio
// containers.
func audioMIME(path string, data []byte) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	if mt := http.DetectContentType(data); mt != "application/octet-stream" {
		return mt
	}
	return "audio/mpeg"
}

func init() {
	rootCmd.AddCommand(audioCmd)
}
