// Package resolve determines which political entities plausibly
// existed during a requested time period, with per-entity confidence
// and conflict annotations.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/chronomap/internal/dateparse"
	"github.com/ppiankov/chronomap/internal/knowledge"
	"github.com/ppiankov/chronomap/internal/model"
)

// fallbackDominantLimit caps the dominant list when no entity is valid
// exactly at the midpoint (moment-of-transition dates).
const fallbackDominantLimit = 10

// turbulentEra is a fixed literal year window that triggers a canned
// assumption when the request overlaps it.
type turbulentEra struct {
	interval model.YearInterval
	note     string
}

var turbulentEras = []turbulentEra{
	{model.YearInterval{Start: 1914, End: 1918},
		"WWI period (1914-1918): Borders were in flux; showing pre-war or post-war state based on midpoint"},
	{model.YearInterval{Start: 1939, End: 1945},
		"WWII period (1939-1945): Many borders changed during occupation; showing general political entities"},
	{model.YearInterval{Start: 1949, End: 1991},
		"Cold War period (1949-1991): Showing divided Germany and Soviet sphere of influence"},
	{model.YearInterval{Start: 1945, End: 1970},
		"Decolonization era: Many African and Asian nations gained independence; borders may have changed rapidly"},
	{model.YearInterval{Start: 1989, End: 1993},
		"Post-Soviet transition (1989-1993): Rapid changes in Eastern Europe; showing dominant entities at midpoint"},
}

// Resolver produces confidence-scored snapshots of "what existed" for
// a year interval. Never fails for a valid interval: an interval with
// no overlapping entities yields an empty-entity state.
type Resolver struct {
	kb    *knowledge.Base
	graph *Graph
}

// NewResolver creates a resolver over the given knowledge base. A nil
// base means the built-in table.
func NewResolver(kb *knowledge.Base) *Resolver {
	if kb == nil {
		kb = knowledge.NewBase()
	}
	return &Resolver{
		kb:    kb,
		graph: NewGraph(),
	}
}

// Resolve builds the snapshot for a parsed date range.
func (r *Resolver) Resolve(parsed *dateparse.ParsedRange) *model.ResolvedState {
	interval := parsed.Interval
	midpoint := parsed.Midpoint()

	var resolved []model.ResolvedEntity
	for _, entity := range r.kb.All() {
		if entity.ValidInterval.Overlaps(interval) {
			resolved = append(resolved, resolveEntity(entity, interval))
		}
	}

	conflicts := r.detectConflicts(resolved)
	dominant := dominantEntities(resolved, midpoint)

	var assumptions []string
	if !parsed.SingleYear {
		assumptions = append(assumptions, fmt.Sprintf(
			"Using midpoint year %d to resolve entity dominance for range %s", midpoint, interval))
	}
	if len(conflicts) > 0 {
		assumptions = append(assumptions, fmt.Sprintf(
			"Detected %d entity conflicts; resolved based on temporal dominance", len(conflicts)))
	}
	for _, era := range turbulentEras {
		if interval.Overlaps(era.interval) {
			assumptions = append(assumptions, era.note)
		}
	}

	return &model.ResolvedState{
		Interval:    interval,
		Entities:    resolved,
		Conflicts:   conflicts,
		Dominant:    dominant,
		Assumptions: assumptions,
		Midpoint:    midpoint,
		SingleYear:  parsed.SingleYear,
	}
}

// EntitiesForYear returns all knowledge entities valid in one year.
func (r *Resolver) EntitiesForYear(year int) []model.KnowledgeEntity {
	return r.kb.ValidInYear(year)
}

// resolveEntity classifies the overlap kind and computes confidence.
// Full overlap scores 1.0; an entity contained in the request scores by
// its share of the window; partial overlaps score 0.5 plus half the
// share, rewarding entities valid for the whole window.
func resolveEntity(entity model.KnowledgeEntity, interval model.YearInterval) model.ResolvedEntity {
	valid := entity.ValidInterval

	overlap, ok := valid.Intersect(interval)
	if !ok {
		// Caller filters by overlap first; kept as a guard.
		return model.ResolvedEntity{
			Entity: entity,
			Notes:  []string{"entity does not overlap with requested range"},
		}
	}

	overlapYears := overlap.Span()
	totalYears := interval.Span()
	share := float64(overlapYears) / float64(totalYears)

	var kind model.OverlapKind
	var confidence float64
	switch {
	case valid.Start <= interval.Start && valid.End >= interval.End:
		kind = model.OverlapFull
		confidence = 1.0
	case valid.Start > interval.Start && valid.End < interval.End:
		kind = model.OverlapContained
		confidence = share
	case valid.Start > interval.Start:
		kind = model.OverlapPartialStart
		confidence = 0.5 + share*0.5
	default:
		kind = model.OverlapPartialEnd
		confidence = 0.5 + share*0.5
	}

	var notes []string
	if kind != model.OverlapFull {
		notes = append(notes, fmt.Sprintf("Entity valid %d-%d, overlaps %d years with requested range",
			valid.Start, valid.End, overlapYears))
	}

	return model.ResolvedEntity{
		Entity:       entity,
		Confidence:   confidence,
		Overlap:      kind,
		OverlapYears: overlapYears,
		Notes:        notes,
	}
}

// detectConflicts groups resolved entities linked through the
// succession graph and classifies each group.
func (r *Resolver) detectConflicts(resolved []model.ResolvedEntity) []model.EntityConflict {
	var conflicts []model.EntityConflict
	seen := make(map[string]bool)

	for _, entity := range resolved {
		name := entity.Name()
		if !r.graph.Has(name) || seen[name] {
			continue
		}

		related := []model.ResolvedEntity{entity}
		for _, other := range resolved {
			if other.Name() == name {
				continue
			}
			if r.linked(name, other.Name()) && !containsEntity(related, other.Name()) {
				related = append(related, other)
			}
		}

		if len(related) < 2 {
			continue
		}

		conflict := classifyConflict(related)
		conflicts = append(conflicts, conflict)
		for _, e := range related {
			seen[e.Name()] = true
		}
	}

	return conflicts
}

// linked reports whether b is a direct successor or predecessor of a.
func (r *Resolver) linked(a, b string) bool {
	for _, n := range r.graph.Related(a) {
		if n == b {
			return true
		}
	}
	return false
}

func containsEntity(entities []model.ResolvedEntity, name string) bool {
	for _, e := range entities {
		if e.Name() == name {
			return true
		}
	}
	return false
}

func classifyConflict(related []model.ResolvedEntity) model.EntityConflict {
	names := make([]string, len(related))
	nameSet := make(map[string]bool, len(related))
	for i, e := range related {
		names[i] = e.Name()
		nameSet[e.Name()] = true
	}

	switch {
	case nameSet["East Germany"] && nameSet["West Germany"]:
		return model.EntityConflict{
			Entities:    related,
			Kind:        model.ConflictSplit,
			Description: "Germany was divided into East and West (1949-1990)",
			Resolution:  "Showing both entities as they coexisted",
		}
	case nameSet["Czechoslovakia"] && (nameSet["Czech Republic"] || nameSet["Slovakia"]):
		return model.EntityConflict{
			Entities:    related,
			Kind:        model.ConflictSplit,
			Description: "Czechoslovakia split into Czech Republic and Slovakia (1993)",
			Resolution:  "Using dominant entity at midpoint",
		}
	default:
		return model.EntityConflict{
			Entities:    related,
			Kind:        model.ConflictSuccession,
			Description: "Succession chain: " + strings.Join(names, " -> "),
			Resolution:  "Using dominant entity at midpoint",
		}
	}
}

// dominantEntities picks the entities preferred for display: those
// valid at the midpoint year, sorted by confidence descending and then
// by narrowest validity interval. When nothing is valid exactly at the
// midpoint, the ten highest-confidence entities overall.
func dominantEntities(resolved []model.ResolvedEntity, midpoint int) []model.ResolvedEntity {
	var atMidpoint []model.ResolvedEntity
	for _, e := range resolved {
		if e.Entity.ValidIn(midpoint) {
			atMidpoint = append(atMidpoint, e)
		}
	}

	if len(atMidpoint) == 0 {
		byConfidence := append([]model.ResolvedEntity(nil), resolved...)
		sort.SliceStable(byConfidence, func(i, j int) bool {
			return byConfidence[i].Confidence > byConfidence[j].Confidence
		})
		if len(byConfidence) > fallbackDominantLimit {
			byConfidence = byConfidence[:fallbackDominantLimit]
		}
		return byConfidence
	}

	sort.SliceStable(atMidpoint, func(i, j int) bool {
		if atMidpoint[i].Confidence != atMidpoint[j].Confidence {
			return atMidpoint[i].Confidence > atMidpoint[j].Confidence
		}
		return atMidpoint[i].Entity.ValidInterval.Span() < atMidpoint[j].Entity.ValidInterval.Span()
	})

	return atMidpoint
}
