package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ppiankov/chronomap/internal/model"
	"github.com/ppiankov/chronomap/internal/pipeline"
	"github.com/spf13/cobra"
)

var entitiesJSON bool

// entitiesCmd represents the entities command
var entitiesCmd = &cobra.Command{
	Use:   "entities <year>",
	Short: "List known political entities for a year",
	Long: `Entities queries the built-in knowledge base for everything known to
exist in a given year.

Example:
  chronomap entities 1970
  chronomap entities 1920 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runEntities,
}

func init() {
	rootCmd.AddCommand(entitiesCmd)

	entitiesCmd.Flags().BoolVar(&entitiesJSON, "json", false, "emit the entity list as JSON")
}

func runEntities(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}

	p := pipeline.New(model.DefaultConfig())
	entities := p.EntitiesForYear(year)

	if entitiesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entities)
	}

	if len(entities) == 0 {
		fmt.Printf("No known entities for %d\n", year)
		return nil
	}

	fmt.Printf("Known entities in %d:\n", year)
	for _, entity := range entities {
		fmt.Printf("  %-30s %-10s %s\n", entity.Name, entity.Type, entity.ValidInterval)
	}

	return nil
}
