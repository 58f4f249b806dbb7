// Package uncertainty quantifies how trustworthy a generated map is.
// Every factor is explainable: a kind, a description, a severity, and
// recommendations, so callers can surface the reasoning rather than a
// bare number.
package uncertainty

import (
	"fmt"
	"strings"

	"github.com/ppiankov/chronomap/internal/model"
)

// Aggregation constants. The overall score is a normalized factor sum
// with diminishing returns per additional factor; a map with no factors
// still carries base uncertainty because all boundaries are
// approximations.
const (
	baseUncertainty = 0.1
	perFactorBump   = 0.1
)

// transitionalPeriod is a historical window of rapid border change.
type transitionalPeriod struct {
	name        string
	interval    model.YearInterval
	description string
	severity    float64
}

var transitionalPeriods = []transitionalPeriod{
	{"World War I", model.YearInterval{Start: 1914, End: 1918},
		"Borders in flux during WWI", 0.7},
	{"Post-WWI Settlement", model.YearInterval{Start: 1918, End: 1923},
		"New borders being established after WWI", 0.6},
	{"World War II", model.YearInterval{Start: 1939, End: 1945},
		"Borders changed due to occupation and conquest", 0.8},
	{"Post-WWII Settlement", model.YearInterval{Start: 1945, End: 1949},
		"Post-war territorial adjustments", 0.5},
	{"Decolonization Era", model.YearInterval{Start: 1945, End: 1975},
		"Rapid changes in Africa and Asia", 0.4},
	{"Soviet Collapse", model.YearInterval{Start: 1989, End: 1993},
		"Dissolution of USSR and Eastern Bloc changes", 0.6},
	{"Yugoslav Wars", model.YearInterval{Start: 1991, End: 2001},
		"Breakup of Yugoslavia with border conflicts", 0.7},
}

// Model assesses map uncertainty. Stateless; safe for concurrent use.
type Model struct{}

// NewModel creates an uncertainty model.
func NewModel() *Model {
	return &Model{}
}

// Calculate produces the full uncertainty assessment for a resolved
// state and its generated boundaries.
func (m *Model) Calculate(state *model.ResolvedState, boundaries *model.BoundarySet) *model.UncertaintyResult {
	var factors []model.UncertaintyFactor

	if f, ok := assessTemporal(state.Interval); ok {
		factors = append(factors, f)
	}
	factors = append(factors, assessTransitional(state.Interval)...)
	factors = append(factors, assessConflicts(state.Conflicts)...)
	if f, ok := assessPartialOverlaps(state.Entities); ok {
		factors = append(factors, f)
	}
	if f, ok := assessDataCompleteness(state, boundaries); ok {
		factors = append(factors, f)
	}

	score := baseUncertainty
	if len(factors) > 0 {
		var total float64
		for _, f := range factors {
			total += f.Severity
		}
		score = min(1.0, total/float64(len(factors)+1)+perFactorBump*float64(len(factors)))
	}

	return &model.UncertaintyResult{
		Score:   score,
		Factors: factors,
		Notes:   generateNotes(factors, state),
	}
}

// QuickRiskAssessment estimates risk for a date range without running
// the full pipeline. Used by the preview path.
func (m *Model) QuickRiskAssessment(startYear, endYear int) (model.RiskAssessment, error) {
	interval, err := model.NewYearInterval(startYear, endYear)
	if err != nil {
		return model.RiskAssessment{}, err
	}

	span := interval.Span()

	var overlapping []string
	for _, period := range transitionalPeriods {
		if interval.Overlaps(period.interval) {
			overlapping = append(overlapping, period.name)
		}
	}

	score := baseUncertainty
	switch {
	case span > 50:
		score += 0.3
	case span > 20:
		score += 0.2
	case span > 5:
		score += 0.1
	}
	score += 0.15 * float64(len(overlapping))
	score = min(1.0, score)

	return model.RiskAssessment{
		Interval:            interval,
		SpanYears:           span,
		Score:               score,
		Risk:                model.RiskFromScore(score),
		TransitionalPeriods: overlapping,
		Recommendations:     periodRecommendations(interval, overlapping),
	}, nil
}

// assessTemporal scores the width of the date range. A single year has
// no temporal factor at all.
func assessTemporal(interval model.YearInterval) (model.UncertaintyFactor, bool) {
	span := interval.Span()

	switch {
	case span <= 1:
		return model.UncertaintyFactor{}, false
	case span <= 5:
		return model.UncertaintyFactor{
			Kind:        model.FactorTemporal,
			Description: fmt.Sprintf("Date range spans %d years", span),
			Severity:    0.1,
			Recommendations: []string{
				"Consider narrowing to a specific year for more precise boundaries",
			},
		}, true
	case span <= 20:
		return model.UncertaintyFactor{
			Kind:        model.FactorTemporal,
			Description: fmt.Sprintf("Date range spans %d years; borders may have changed", span),
			Severity:    0.25,
			Recommendations: []string{
				"Map shows dominant entities at midpoint of range",
				"Some border changes may have occurred within this period",
			},
		}, true
	default:
		return model.UncertaintyFactor{
			Kind:        model.FactorTemporal,
			Description: fmt.Sprintf("Wide date range (%d years) increases uncertainty", span),
			Severity:    0.4,
			Recommendations: []string{
				"Significant geopolitical changes likely occurred",
				"Consider generating maps for narrower time slices",
				"Map represents approximate state at midpoint",
			},
		}, true
	}
}

// assessTransitional emits one factor per overlapping transitional
// period, with severity scaled by how much of the request the period
// covers. The +0.3 floor keeps a grazing overlap from vanishing.
func assessTransitional(interval model.YearInterval) []model.UncertaintyFactor {
	var factors []model.UncertaintyFactor

	for _, period := range transitionalPeriods {
		overlap, ok := interval.Intersect(period.interval)
		if !ok {
			continue
		}

		ratio := float64(overlap.Span()) / float64(interval.Span())
		severity := period.severity * min(1.0, ratio+0.3)

		factors = append(factors, model.UncertaintyFactor{
			Kind:        model.FactorTransitional,
			Description: fmt.Sprintf("%s: %s", period.name, period.description),
			Severity:    severity,
			Recommendations: []string{
				fmt.Sprintf("Borders during %s were in flux", period.name),
				"Historical maps from this period may show different boundaries",
			},
		})
	}

	return factors
}

func assessConflicts(conflicts []model.EntityConflict) []model.UncertaintyFactor {
	var factors []model.UncertaintyFactor

	for _, conflict := range conflicts {
		severity := 0.3
		switch conflict.Kind {
		case model.ConflictSplit:
			severity = 0.35
		case model.ConflictMerger:
			severity = 0.3
		case model.ConflictDisputed:
			severity = 0.5
		}

		names := conflict.EntityNames()
		factors = append(factors, model.UncertaintyFactor{
			Kind:             model.FactorConflict,
			Description:      conflict.Description,
			Severity:         severity,
			AffectedEntities: names,
			Recommendations: []string{
				conflict.Resolution,
				fmt.Sprintf("Entities involved: %s", strings.Join(names, ", ")),
			},
		})
	}

	return factors
}

// assessPartialOverlaps aggregates all partially-valid entities into a
// single factor scaled by their average confidence.
func assessPartialOverlaps(entities []model.ResolvedEntity) (model.UncertaintyFactor, bool) {
	var partial []model.ResolvedEntity
	for _, e := range entities {
		switch e.Overlap {
		case model.OverlapPartialStart, model.OverlapPartialEnd, model.OverlapContained:
			partial = append(partial, e)
		}
	}

	if len(partial) == 0 {
		return model.UncertaintyFactor{}, false
	}

	names := make([]string, len(partial))
	var sum float64
	for i, e := range partial {
		names[i] = e.Name()
		sum += e.Confidence
	}
	avgConfidence := sum / float64(len(partial))

	return model.UncertaintyFactor{
		Kind:             model.FactorPartialOverlap,
		Description:      fmt.Sprintf("%d entities only partially overlap with requested period", len(partial)),
		Severity:         0.2 + (1.0-avgConfidence)*0.3,
		AffectedEntities: names,
		Recommendations: []string{
			"Some entities may not have existed for the entire requested period",
			"Map shows entities at their dominant state during the period",
		},
	}, true
}

// assessDataCompleteness flags thin coverage: few known entities, or
// entities that produced no geometry. The entity-count check wins when
// both apply.
func assessDataCompleteness(state *model.ResolvedState, boundaries *model.BoundarySet) (model.UncertaintyFactor, bool) {
	entityCount := len(state.Dominant)
	polygonCount := len(boundaries.Polygons)

	if entityCount < 5 {
		return model.UncertaintyFactor{
			Kind:        model.FactorData,
			Description: fmt.Sprintf("Limited historical data: only %d entities found", entityCount),
			Severity:    0.3,
			Recommendations: []string{
				"Knowledge base may not contain all relevant entities for this period",
				"Consider expanding the knowledge base for better coverage",
			},
		}, true
	}

	if float64(polygonCount) < float64(entityCount)*0.5 {
		return model.UncertaintyFactor{
			Kind:        model.FactorData,
			Description: "Some entities could not be mapped to geographic regions",
			Severity:    0.2,
			Recommendations: []string{
				"Boundary data unavailable for some entities",
				"Map may not show all entities mentioned",
			},
		}, true
	}

	return model.UncertaintyFactor{}, false
}

func generateNotes(factors []model.UncertaintyFactor, state *model.ResolvedState) []string {
	var notes []string

	switch len(factors) {
	case 0:
		notes = append(notes, "Low uncertainty: requested period is well-defined and stable")
	case 1:
		notes = append(notes, fmt.Sprintf("One uncertainty factor identified: %s", factors[0].Kind))
	default:
		notes = append(notes, fmt.Sprintf("Multiple uncertainty factors identified (%d total)", len(factors)))
	}

	if state.Interval.Start < 1700 {
		notes = append(notes,
			"Pre-1700 maps have higher uncertainty due to less precise historical records")
	}

	for _, f := range factors {
		if f.Kind == model.FactorTransitional {
			notes = append(notes,
				"This period includes transitional events; borders may differ from other sources")
			break
		}
	}

	var highImpact []string
	for _, f := range factors {
		if f.Severity >= 0.5 {
			highImpact = append(highImpact, string(f.Kind))
		}
	}
	if len(highImpact) > 0 {
		notes = append(notes, fmt.Sprintf("High-impact factors: %s", strings.Join(highImpact, ", ")))
	}

	notes = append(notes,
		"All boundaries are approximations based on simplified templates. Consult historical atlases for precise borders.")

	return notes
}

func periodRecommendations(interval model.YearInterval, overlapping []string) []string {
	var recommendations []string

	if interval.Span() > 20 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider generating separate maps for smaller time periods within %s", interval))
	}

	if len(overlapping) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Period overlaps with: %s. Expect higher uncertainty in affected regions.",
			strings.Join(overlapping, ", ")))
	}

	if interval.Start < 1700 {
		recommendations = append(recommendations,
			"Historical borders before 1700 are less precisely documented")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Period appears relatively stable with good historical documentation")
	}

	return recommendations
}
