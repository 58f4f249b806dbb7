package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ppiankov/chronomap/internal/dateparse"
	"github.com/ppiankov/chronomap/internal/model"
	"github.com/ppiankov/chronomap/internal/pipeline"
	"github.com/spf13/cobra"
)

var previewJSON bool

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <date>",
	Short: "Preview what a map would contain without rendering",
	Long: `Preview resolves the historical state and risk for a date without
fetching geometry or rendering an image. Useful for checking a period
before a full generation.

Example:
  chronomap preview 1918-1939
  chronomap preview 1991 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "emit the preview as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	p := pipeline.New(model.DefaultConfig())

	preview, err := p.Preview(args[0])
	if err != nil {
		var parseErr *dateparse.ParseError
		if errors.As(err, &parseErr) && parseErr.Suggestion != "" {
			return fmt.Errorf("%s (did you mean %q?)", parseErr.Message, parseErr.Suggestion)
		}
		return err
	}

	if previewJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(preview)
	}

	fmt.Printf("Period:    %s (midpoint %d)\n", preview.Interval, preview.Midpoint)
	fmt.Printf("Entities:  %d known, %d dominant\n", preview.EntityCount, len(preview.Dominant))
	for _, name := range preview.Dominant {
		fmt.Printf("  - %s\n", name)
	}

	if len(preview.Conflicts) > 0 {
		fmt.Printf("Conflicts:\n")
		for _, conflict := range preview.Conflicts {
			fmt.Printf("  - [%s] %s\n", conflict.Kind, conflict.Description)
		}
	}

	fmt.Printf("Risk:      %s (score %.2f)\n", preview.Risk.Risk, preview.Risk.Score)
	for _, period := range preview.Risk.TransitionalPeriods {
		fmt.Printf("  - overlaps %s\n", period)
	}

	if len(preview.Assumptions) > 0 {
		fmt.Printf("Assumptions:\n")
		for _, assumption := range preview.Assumptions {
			fmt.Printf("  - %s\n", assumption)
		}
	}

	return nil
}
