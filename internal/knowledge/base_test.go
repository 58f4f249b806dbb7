package knowledge

import (
	"path/filepath"
	"testing"

	"github.com/ppiankov/chronomap/internal/model"
)

func TestBase_FindByName(t *testing.T) {
	b := NewBase()

	cases := []struct {
		query string
		want  string
	}{
		{"USSR", "USSR"},
		{"ussr", "USSR"},
		{"Soviet Union", "USSR"},
		{"Third Reich", "Nazi Germany"},
		{"constantinople", "Constantinople"},
	}

	for _, tc := range cases {
		entity, found := b.FindByName(tc.query)
		if !found {
			t.Errorf("FindByName(%q): not found", tc.query)
			continue
		}
		if entity.Name != tc.want {
			t.Errorf("FindByName(%q) = %q, want %q", tc.query, entity.Name, tc.want)
		}
	}

	if _, found := b.FindByName("Atlantis"); found {
		t.Errorf("FindByName(Atlantis): unexpected match")
	}
}

func TestBase_ValidInYear(t *testing.T) {
	b := NewBase()

	names := make(map[string]bool)
	for _, e := range b.ValidInYear(1970) {
		names[e.Name] = true
	}

	for _, want := range []string{"USSR", "East Germany", "West Germany"} {
		if !names[want] {
			t.Errorf("%s missing for 1970", want)
		}
	}
	if names["Germany"] {
		t.Errorf("unified Germany should not be valid in 1970")
	}
	if names["Ottoman Empire"] {
		t.Errorf("Ottoman Empire should not be valid in 1970")
	}
}

func TestBase_ByType(t *testing.T) {
	b := NewBase()

	cities := b.ByType(model.EntityCity)
	if len(cities) == 0 {
		t.Fatalf("expected city entities")
	}
	for _, e := range cities {
		if e.Type != model.EntityCity {
			t.Errorf("%s has type %s", e.Name, e.Type)
		}
	}

	empires := b.ByType(model.EntityEmpire)
	found := false
	for _, e := range empires {
		if e.Name == "Ottoman Empire" {
			found = true
		}
	}
	if !found {
		t.Errorf("Ottoman Empire missing from empires")
	}
}

func TestBase_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entities.json")

	src := NewEmptyBase()
	interval, err := model.NewYearInterval(1867, 1918)
	if err != nil {
		t.Fatalf("interval: %v", err)
	}
	src.Add(model.KnowledgeEntity{
		Name:           "Austria-Hungary",
		CanonicalName:  "austria_hungary",
		Type:           model.EntityEmpire,
		ValidInterval:  interval,
		AlternateNames: []string{"Austro-Hungarian Empire"},
	})

	if err := src.SaveJSON(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	dst := NewEmptyBase()
	if err := dst.LoadJSON(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(dst.All()) != 1 {
		t.Fatalf("loaded %d entities, want 1", len(dst.All()))
	}
	got := dst.All()[0]
	if got.Name != "Austria-Hungary" || got.CanonicalName != "austria_hungary" {
		t.Errorf("unexpected entity: %+v", got)
	}
	if got.ValidInterval.Start != 1867 || got.ValidInterval.End != 1918 {
		t.Errorf("unexpected interval: %v", got.ValidInterval)
	}
	if len(got.AlternateNames) != 1 || got.AlternateNames[0] != "Austro-Hungarian Empire" {
		t.Errorf("unexpected alternates: %v", got.AlternateNames)
	}

	entity, found := dst.FindByName("austro-hungarian empire")
	if !found || entity.Name != "Austria-Hungary" {
		t.Errorf("alternate lookup failed after load")
	}
}

func TestBase_LoadJSONMissingFile(t *testing.T) {
	b := NewEmptyBase()
	if err := b.LoadJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
