package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/chronomap/internal/batch"
	"github.com/ppiankov/chronomap/internal/model"
	"github.com/ppiankov/chronomap/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchFormat  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Generate maps for multiple dates from a file in parallel",
	Long: `Batch reads dates from a file (one per line, # for comments) and
generates a map for each, using a concurrent worker pool.

Example:
  chronomap batch dates.txt
  chronomap batch dates.txt --concurrency 8 --output-dir ./maps --format png`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./chronomap-maps", "output directory for images")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchFormat, "format", "svg", "output format: svg or png")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	format, err := resolveFormat(batchFormat, "")
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Batch generation\n")
	fmt.Fprintf(os.Stderr, "  Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:  %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Format:      %s\n\n", format)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.Concurrency.BatchWorkers = concurrency
	cfg.Output.Verbose = verbose

	p := pipeline.New(cfg)
	processor := batch.NewProcessor(p, concurrency, format)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Date, result.Error)
			continue
		}

		successCount++

		name := dateFilename(result.Date) + "." + string(format)
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, result.Output.Image, 0644); err != nil {
			failureCount++
			successCount--
			fmt.Fprintf(os.Stderr, "✗ %s: write image: %v\n", result.Date, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (confidence %.2f) -> %s\n",
			result.Date, result.Output.Uncertainty.Confidence(), path)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d total, %d succeeded, %d failed\n",
		len(results), successCount, failureCount)

	return nil
}

// dateFilename turns a raw date input into a safe file stem.
func dateFilename(date string) string {
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(strings.TrimSpace(date))
}
