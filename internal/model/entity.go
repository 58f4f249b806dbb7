package model

import (
	"encoding/json"
	"fmt"
)

// EntityType is the closed set of territorial entity kinds. Switches
// over it are exhaustive; a new kind cannot silently fall through to a
// default styling path.
type EntityType int

const (
	EntityCountry EntityType = iota
	EntityCity
	EntityEmpire
	EntityTerritory
)

func (t EntityType) String() string {
	switch t {
	case EntityCountry:
		return "country"
	case EntityCity:
		return "city"
	case EntityEmpire:
		return "empire"
	case EntityTerritory:
		return "territory"
	default:
		return "unknown"
	}
}

// ParseEntityType converts the wire form back into the enum.
func ParseEntityType(s string) (EntityType, error) {
	switch s {
	case "country":
		return EntityCountry, nil
	case "city":
		return EntityCity, nil
	case "empire":
		return EntityEmpire, nil
	case "territory":
		return EntityTerritory, nil
	default:
		return EntityCountry, fmt.Errorf("unknown entity type %q", s)
	}
}

// MarshalJSON encodes the type as its string form so knowledge-base
// files stay human-editable.
func (t EntityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *EntityType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEntityType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// KnowledgeEntity is a named political or territorial thing with a
// validity interval. Entities are loaded once at resolver construction
// and never mutated afterwards.
type KnowledgeEntity struct {
	Name           string         `json:"name"`
	CanonicalName  string         `json:"canonical_name"`
	Type           EntityType     `json:"entity_type"`
	ValidInterval  YearInterval   `json:"valid_interval"`
	AlternateNames []string       `json:"alternate_names,omitempty"`
	Context        map[string]any `json:"context,omitempty"`
}

// ValidIn reports whether the entity existed in the given year.
func (e KnowledgeEntity) ValidIn(year int) bool {
	return e.ValidInterval.Contains(year)
}
