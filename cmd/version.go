package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (injected at build time via ldflags)
var (
	AppVersion = "development"
	BuildTime  = "unknown"
	GitCommit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("flipart %s\n", AppVersion)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)

		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			key = os.Getenv("FLIPART_GEMINI_API_KEY")
		}
		if len(key) >= 8 {
			fmt.Printf("API key: %s...%s (configured)\n", key[:4], key[len(key)-4:])
		} else if key != "" {
			fmt.Println("API key: configured")
		} else {
			fmt.Println("API key: not set (export GEMINI_API_KEY=your-api-key)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
