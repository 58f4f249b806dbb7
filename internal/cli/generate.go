package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/chronomap/internal/dateparse"
	"github.com/ppiankov/chronomap/internal/model"
	"github.com/ppiankov/chronomap/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outPath     string
	outFormat   string
	mapTitle    string
	hideDate    bool
	region      string
	timeout     time.Duration
	noCache     bool
	noRealData  bool
	allowFuture bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <date>",
	Short: "Generate a historical map for a date or date range",
	Long: `Generate renders a historical world map for a year or year range:
- Resolves which political entities existed in the period
- Fetches real boundary data, falling back to simplified templates
- Renders an SVG or PNG image in an old-world cartographic style
- Reports assumptions and an uncertainty assessment

Example:
  chronomap generate 1914
  chronomap generate 1918-1939 --out interwar.svg
  chronomap generate 1949 --region europe --format png --out cold-war.png
  chronomap generate 1970 --hide-date --out quiz.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&outPath, "out", "map.svg", "output image path")
	generateCmd.Flags().StringVar(&outFormat, "format", "", "output format: svg or png (default: from --out extension)")
	generateCmd.Flags().StringVar(&mapTitle, "title", "", "custom map title")
	generateCmd.Flags().BoolVar(&hideDate, "hide-date", false, "use a generic title that does not reveal the date")
	generateCmd.Flags().StringVar(&region, "region", "", "zoom preset: world, europe, asia, africa, americas")
	generateCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall generation timeout")
	generateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable boundary cache (force fresh fetch)")
	generateCmd.Flags().BoolVar(&noRealData, "no-real-data", false, "skip real boundary sources, use synthetic templates")
	generateCmd.Flags().BoolVar(&allowFuture, "allow-future", false, "allow years beyond the current calendar year")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	date := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.GeoData.UseRealData = !noRealData
	cfg.Parser.AllowFuture = allowFuture
	cfg.Output.Verbose = verbose

	format, err := resolveFormat(outFormat, outPath)
	if err != nil {
		return err
	}

	var opts []pipeline.Option
	if verbose {
		opts = append(opts, pipeline.WithProgress(os.Stderr))
	}
	p := pipeline.New(cfg, opts...)

	result, err := p.Generate(ctx, pipeline.GenerateRequest{
		Date:     date,
		Format:   format,
		Title:    mapTitle,
		HideDate: hideDate,
		Region:   region,
	})
	if err != nil {
		var parseErr *dateparse.ParseError
		if errors.As(err, &parseErr) && parseErr.Suggestion != "" {
			return fmt.Errorf("%s (did you mean %q?)", parseErr.Message, parseErr.Suggestion)
		}
		return fmt.Errorf("generate failed: %w", err)
	}

	if err := os.WriteFile(outPath, result.Image, 0644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Saved %s map for %s to %s\n", result.ImageFormat, result.Interval, outPath)
	fmt.Fprintf(os.Stderr, "  Confidence: %.2f (risk: %s)\n",
		result.Uncertainty.Confidence(), result.Uncertainty.Risk())

	if verbose {
		fmt.Fprintf(os.Stderr, "\nAssumptions:\n")
		for _, assumption := range result.Assumptions {
			fmt.Fprintf(os.Stderr, "  - %s\n", assumption)
		}
	}

	return nil
}

// resolveFormat picks the output format from the flag, falling back to
// the output path extension.
func resolveFormat(flag, path string) (pipeline.Format, error) {
	switch strings.ToLower(flag) {
	case "svg":
		return pipeline.FormatSVG, nil
	case "png":
		return pipeline.FormatPNG, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported format %q (want svg or png)", flag)
	}

	if strings.HasSuffix(strings.ToLower(path), ".png") {
		return pipeline.FormatPNG, nil
	}
	return pipeline.FormatSVG, nil
}
