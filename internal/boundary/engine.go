// Package boundary turns a resolved historical state into renderable
// polygons. Real upstream geometry is preferred; synthetic template
// shapes centered on known region coordinates are the fallback, so a
// map is always produced.
package boundary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/chronomap/internal/geodata"
	"github.com/ppiankov/chronomap/internal/model"
)

// Secondary parts of a MultiPolygon are kept when they rank in the
// first few by position or cover at least this share of the largest
// part. Drops sub-pixel islands without losing Alaska-sized exclaves.
const (
	maxPartsAlwaysKept = 5
	minPartAreaShare   = 0.05
)

// matchedUncertainty is attached to real polygons we can tie to a
// resolved entity; unmatched geometry gets zero since there is no
// temporal claim to be uncertain about.
const matchedUncertainty = 0.1

// uncertainEntityThreshold marks entities that get a shaded
// uncertainty region in addition to their polygon.
const uncertainEntityThreshold = 0.9

// Engine generates boundary sets. A nil fetcher disables the real-data
// path entirely.
type Engine struct {
	fetcher *geodata.Fetcher
}

// NewEngine creates an engine. fetcher may be nil for synthetic-only
// operation.
func NewEngine(fetcher *geodata.Fetcher) *Engine {
	return &Engine{fetcher: fetcher}
}

// GenerateBoundaries produces the polygon set for a resolved state.
// Never fails: when real data is unavailable it degrades to synthetic
// shapes and says so in the notes.
func (e *Engine) GenerateBoundaries(ctx context.Context, state *model.ResolvedState) *model.BoundarySet {
	if e.fetcher != nil {
		// Boundaries reflect the start of the interval: a 1950-1990 map
		// shows the world as it stood in 1950.
		result := e.fetcher.FetchBoundaries(ctx, state.Interval.Start)
		if result.Success && len(result.Features) > 0 {
			return e.fromRealData(state, result)
		}
		return e.fromSynthetic(state, result.Error)
	}

	return e.fromSynthetic(state, "")
}

func (e *Engine) fromRealData(state *model.ResolvedState, result model.GeoDataResult) *model.BoundarySet {
	dominant := make(map[string]model.ResolvedEntity)
	for _, entity := range state.Dominant {
		dominant[strings.ToLower(entity.Name())] = entity
		dominant[strings.ToLower(entity.CanonicalName())] = entity
	}

	set := &model.BoundarySet{
		Interval:   state.Interval,
		Provenance: model.ProvenanceRealData,
		Source:     result.Source,
		Notes: []string{
			fmt.Sprintf("Using real boundary data from %s", result.Source),
			fmt.Sprintf("Data date: %s", result.DateUsed),
		},
	}
	if result.ActualYear != 0 && result.ActualYear != result.RequestedYear {
		set.Notes = append(set.Notes, fmt.Sprintf(
			"Nearest available reference year %d used for requested year %d",
			result.ActualYear, result.RequestedYear))
	}

	for _, feature := range result.Features {
		set.Polygons = append(set.Polygons, convertFeature(feature, dominant)...)
	}
	set.Notes = append(set.Notes, fmt.Sprintf("Loaded %d real boundary polygons", len(set.Polygons)))

	set.UncertaintyRegions = uncertaintyRegions(state)
	appendSummaryNotes(set, state)

	return set
}

func (e *Engine) fromSynthetic(state *model.ResolvedState, fetchError string) *model.BoundarySet {
	set := &model.BoundarySet{
		Interval:   state.Interval,
		Provenance: model.ProvenanceSynthetic,
		Source:     "synthetic",
	}

	if fetchError != "" {
		set.Notes = append(set.Notes, fmt.Sprintf("Could not fetch real data: %s", fetchError))
	}
	set.Notes = append(set.Notes,
		"Using synthetic boundary templates positioned at known region coordinates")

	for _, entity := range state.Dominant {
		if polygon, ok := syntheticPolygon(entity); ok {
			set.Polygons = append(set.Polygons, polygon)
		}
	}

	set.UncertaintyRegions = uncertaintyRegions(state)
	appendSummaryNotes(set, state)

	return set
}

func appendSummaryNotes(set *model.BoundarySet, state *model.ResolvedState) {
	set.Notes = append(set.Notes,
		fmt.Sprintf("Total: %d territory polygons", len(set.Polygons)),
		fmt.Sprintf("Identified %d uncertain regions", len(set.UncertaintyRegions)))
	if len(state.Conflicts) > 0 {
		set.Notes = append(set.Notes, fmt.Sprintf("Resolved %d entity conflicts", len(state.Conflicts)))
	}
}

// convertFeature turns one upstream feature into polygons, matching it
// against the dominant entities for labeling and color.
func convertFeature(feature model.GeoFeature, dominant map[string]model.ResolvedEntity) []model.Polygon {
	entity, matched := dominant[strings.ToLower(feature.Name)]

	entityType := model.EntityCountry
	uncertainty := 0.0
	name := feature.Name
	if matched {
		entityType = entity.Entity.Type
		uncertainty = matchedUncertainty
		name = entity.Name()
	}
	fill, border := entityColors(name, entityType)

	var rings [][][]float64
	switch feature.GeometryType {
	case "Polygon":
		if len(feature.Polygon) > 0 {
			rings = [][][]float64{feature.Polygon[0]}
		}
	case "MultiPolygon":
		rings = exteriorRings(feature.MultiPolygon)
	}

	var polygons []model.Polygon
	for i, ring := range rings {
		points := ringPoints(ring)
		if len(points) < 3 {
			continue
		}

		polygon := model.Polygon{
			Points:      points,
			EntityType:  entityType,
			FillColor:   fill,
			BorderColor: border,
			Uncertainty: uncertainty,
		}
		if i == 0 {
			polygon.EntityName = name
		} else {
			// Secondary parts share color but stay unlabeled.
			polygon.Meta = map[string]any{"is_part": true, "part_of": name}
		}
		polygons = append(polygons, polygon)
	}

	return polygons
}

// exteriorRings extracts the exterior ring of each MultiPolygon part
// that survives the size filter. Parts are ordered largest first so the
// mainland carries the label.
func exteriorRings(multi [][][][]float64) [][][]float64 {
	type sized struct {
		ring [][]float64
		area float64
	}

	var parts []sized
	for _, part := range multi {
		if len(part) == 0 || len(part[0]) < 3 {
			continue
		}
		parts = append(parts, sized{ring: part[0], area: ringArea(part[0])})
	}
	if len(parts) == 0 {
		return nil
	}

	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].area > parts[j].area
	})

	threshold := parts[0].area * minPartAreaShare
	var rings [][][]float64
	for i, part := range parts {
		if i < maxPartsAlwaysKept || part.area >= threshold {
			rings = append(rings, part.ring)
		}
	}

	return rings
}

// ringArea is the shoelace area of a lon/lat ring, in squared degrees.
// Only used for relative size comparison.
func ringArea(ring [][]float64) float64 {
	if len(ring) < 3 {
		return 0
	}

	var sum float64
	for i := range ring {
		j := (i + 1) % len(ring)
		if len(ring[i]) < 2 || len(ring[j]) < 2 {
			return 0
		}
		sum += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}

	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func ringPoints(ring [][]float64) []model.Point {
	var points []model.Point
	for _, coord := range ring {
		if len(coord) < 2 {
			continue
		}
		points = append(points, model.Point{X: coord[0], Y: coord[1]})
	}
	return points
}

// uncertaintyRegions builds shaded overlays for dominant entities whose
// temporal confidence is low. The overlay is a scaled-up template shape
// at the entity's region, not a geometric claim.
func uncertaintyRegions(state *model.ResolvedState) []model.UncertaintyRegion {
	var regions []model.UncertaintyRegion

	for _, entity := range state.Dominant {
		if entity.Confidence >= uncertainEntityThreshold {
			continue
		}

		polygon, ok := uncertaintyPolygon(entity)
		if !ok {
			continue
		}

		regions = append(regions, model.UncertaintyRegion{
			Polygon:  polygon,
			Reason:   overlapReason(entity),
			Entities: []string{entity.Name()},
			Severity: 1 - entity.Confidence,
		})
	}

	return regions
}

func overlapReason(entity model.ResolvedEntity) string {
	switch entity.Overlap {
	case model.OverlapPartialStart:
		return fmt.Sprintf("%s did not exist at the start of the period", entity.Name())
	case model.OverlapPartialEnd:
		return fmt.Sprintf("%s ceased to exist during the period", entity.Name())
	case model.OverlapContained:
		return fmt.Sprintf("%s only existed for part of the period", entity.Name())
	default:
		return fmt.Sprintf("Uncertain boundaries for %s", entity.Name())
	}
}
