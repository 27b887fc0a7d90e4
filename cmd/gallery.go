package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flipart/flipart/internal/export"
)

var galleryExport int

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "List generated images, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, _, err := setup(context.Background())
		if err != nil {
			return err
		}

		history := s.History()
		if len(history) == 0 {
			fmt.Println("No images yet. Try \"flipart generate\".")
			return nil
		}

		for i, a := range history {
			fmt.Printf("%2d. [%s] %s  %q\n", i+1, a.AspectRatio, a.CreatedAt.Format("2006-01-02 15:04"), a.Prompt)
		}

		if galleryExport > 0 {
			if galleryExport > len(history) {
				return fmt.Errorf("no image #%d (gallery holds %d)", galleryExport, len(history))
			}
			path, err := export.Save(cfg.ExportDir(), history[galleryExport-1].URL)
			if err != nil {
				return err
			}
			fmt.Printf("Saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	galleryCmd.Flags().IntVar(&galleryExport, "export", 0, "export the Nth listed image")
	rootCmd.AddCommand(galleryCmd)
}
