package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flipart/flipart/internal/export"
	"github.com/flipart/flipart/internal/gallery"
)

var (
	generateRatio  string
	generateExport bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate an image from a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, _, err := setup(context.Background())
		if err != nil {
			return err
		}

		ratio := gallery.AspectRatio(generateRatio)
		if !ratio.Valid() {
			return fmt.Errorf("unsupported aspect ratio %q (supported: %v)", generateRatio, gallery.AspectRatios)
		}

		ctx, cancel := callCtx(context.Background())
		defer cancel()

		artifact, err := s.GenerateImage(ctx, strings.Join(args, " "), ratio)
		if err != nil {
			return requireSignIn(err)
		}

		fmt.Printf("Generated %s (%s)\n", artifact.ID, artifact.AspectRatio)

		if generateExport {
			path, err := export.Save(cfg.ExportDir(), artifact.URL)
			if err != nil {
				return err
			}
			fmt.Printf("Saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateRatio, "ratio", string(gallery.AspectSquare), "aspect ratio (1:1, 3:4, 4:3, 9:16, 16:9)")
	generateCmd.Flags().BoolVar(&generateExport, "export", false, "save the image to the export directory")
	rootCmd.AddCommand(generateCmd)
}
