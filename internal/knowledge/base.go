package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/chronomap/internal/model"
)

// Base is the in-memory reference table of historical entities. The
// resolver only needs read access; Add/LoadJSON exist so callers can
// extend the table before resolution starts.
type Base struct {
	entities []model.KnowledgeEntity
}

// NewBase creates a base pre-loaded with the built-in entity table.
func NewBase() *Base {
	return &Base{entities: defaultEntities()}
}

// NewEmptyBase creates a base with no entities. Used by tests that want
// full control over the table.
func NewEmptyBase() *Base {
	return &Base{}
}

// Add appends an entity to the table.
func (b *Base) Add(e model.KnowledgeEntity) {
	b.entities = append(b.entities, e)
}

// All returns every entity in the table.
func (b *Base) All() []model.KnowledgeEntity {
	return b.entities
}

// ByType returns the entities of one kind.
func (b *Base) ByType(t model.EntityType) []model.KnowledgeEntity {
	var out []model.KnowledgeEntity
	for _, e := range b.entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// ValidInYear returns the entities that existed in the given year.
func (b *Base) ValidInYear(year int) []model.KnowledgeEntity {
	var out []model.KnowledgeEntity
	for _, e := range b.entities {
		if e.ValidIn(year) {
			out = append(out, e)
		}
	}
	return out
}

// FindByName finds an entity by name, canonical name, or any alternate
// name, case-insensitively. Returns the first match.
func (b *Base) FindByName(name string) (model.KnowledgeEntity, bool) {
	lower := strings.ToLower(name)

	for _, e := range b.entities {
		if strings.ToLower(e.Name) == lower || strings.ToLower(e.CanonicalName) == lower {
			return e, true
		}
		for _, alt := range e.AlternateNames {
			if strings.ToLower(alt) == lower {
				return e, true
			}
		}
	}

	return model.KnowledgeEntity{}, false
}

// entityRecord is the on-disk form of an entity.
type entityRecord struct {
	Name           string           `json:"name"`
	CanonicalName  string           `json:"canonical_name"`
	EntityType     model.EntityType `json:"entity_type"`
	ValidRange     [2]int           `json:"valid_range"`
	AlternateNames []string         `json:"alternate_names,omitempty"`
	Context        map[string]any   `json:"context,omitempty"`
}

// LoadJSON appends entities from a JSON file to the table.
func (b *Base) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read knowledge file: %w", err)
	}

	var records []entityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse knowledge file: %w", err)
	}

	for _, r := range records {
		interval, err := model.NewYearInterval(r.ValidRange[0], r.ValidRange[1])
		if err != nil {
			return fmt.Errorf("entity %q: %w", r.Name, err)
		}
		b.Add(model.KnowledgeEntity{
			Name:           r.Name,
			CanonicalName:  r.CanonicalName,
			Type:           r.EntityType,
			ValidInterval:  interval,
			AlternateNames: r.AlternateNames,
			Context:        r.Context,
		})
	}

	return nil
}

// SaveJSON writes the full table to a JSON file.
func (b *Base) SaveJSON(path string) error {
	records := make([]entityRecord, len(b.entities))
	for i, e := range b.entities {
		records[i] = entityRecord{
			Name:           e.Name,
			CanonicalName:  e.CanonicalName,
			EntityType:     e.Type,
			ValidRange:     [2]int{e.ValidInterval.Start, e.ValidInterval.End},
			AlternateNames: e.AlternateNames,
			Context:        e.Context,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal knowledge table: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write knowledge file: %w", err)
	}

	return nil
}
