package uncertainty

import (
	"math"
	"strings"
	"testing"

	"github.com/ppiankov/chronomap/internal/model"
)

func TestAssessTemporal(t *testing.T) {
	cases := []struct {
		start, end   int
		wantFactor   bool
		wantSeverity float64
	}{
		{1970, 1970, false, 0},
		{1970, 1973, true, 0.1},
		{1918, 1930, true, 0.25},
		{1900, 1950, true, 0.4},
	}

	for _, tc := range cases {
		factor, ok := assessTemporal(model.YearInterval{Start: tc.start, End: tc.end})
		if ok != tc.wantFactor {
			t.Errorf("%d-%d: factor present = %v, want %v", tc.start, tc.end, ok, tc.wantFactor)
			continue
		}
		if ok && factor.Severity != tc.wantSeverity {
			t.Errorf("%d-%d: severity = %v, want %v", tc.start, tc.end, factor.Severity, tc.wantSeverity)
		}
		if ok && factor.Kind != model.FactorTemporal {
			t.Errorf("%d-%d: kind = %s", tc.start, tc.end, factor.Kind)
		}
	}
}

func TestAssessTransitional(t *testing.T) {
	factors := assessTransitional(model.YearInterval{Start: 1988, End: 1995})

	foundSoviet := false
	foundYugoslav := false
	for _, f := range factors {
		if strings.Contains(f.Description, "Soviet Collapse") {
			foundSoviet = true
			// Full period overlap: 1989-1993 inside 1988-1995,
			// ratio 5/8, severity 0.6 * min(1, 5/8+0.3).
			want := 0.6 * math.Min(1.0, 5.0/8.0+0.3)
			if math.Abs(f.Severity-want) > 1e-9 {
				t.Errorf("Soviet Collapse severity = %v, want %v", f.Severity, want)
			}
		}
		if strings.Contains(f.Description, "Yugoslav Wars") {
			foundYugoslav = true
		}
	}
	if !foundSoviet {
		t.Errorf("Soviet Collapse factor missing")
	}
	if !foundYugoslav {
		t.Errorf("Yugoslav Wars factor missing")
	}

	if factors := assessTransitional(model.YearInterval{Start: 1860, End: 1870}); len(factors) != 0 {
		t.Errorf("stable period produced %d transitional factors", len(factors))
	}
}

func TestCalculate_NoFactorsBaseScore(t *testing.T) {
	m := NewModel()

	// Single stable year with plenty of entities and geometry.
	state := &model.ResolvedState{
		Interval: model.YearInterval{Start: 1880, End: 1880},
		Dominant: make([]model.ResolvedEntity, 6),
	}
	boundaries := &model.BoundarySet{Polygons: make([]model.Polygon, 6)}

	result := m.Calculate(state, boundaries)
	if result.Score != baseUncertainty {
		t.Errorf("score = %v, want base %v", result.Score, baseUncertainty)
	}
	if len(result.Factors) != 0 {
		t.Errorf("unexpected factors: %+v", result.Factors)
	}
	if len(result.Notes) == 0 || result.Notes[0] != "Low uncertainty: requested period is well-defined and stable" {
		t.Errorf("notes = %v", result.Notes)
	}
}

func TestCalculate_Aggregation(t *testing.T) {
	m := NewModel()

	state := &model.ResolvedState{
		Interval: model.YearInterval{Start: 1939, End: 1945},
		Dominant: make([]model.ResolvedEntity, 6),
	}
	boundaries := &model.BoundarySet{Polygons: make([]model.Polygon, 6)}

	result := m.Calculate(state, boundaries)
	if len(result.Factors) == 0 {
		t.Fatalf("expected factors for 1939-1945")
	}

	var total float64
	for _, f := range result.Factors {
		total += f.Severity
	}
	n := float64(len(result.Factors))
	want := math.Min(1.0, total/(n+1)+perFactorBump*n)
	if math.Abs(result.Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", result.Score, want)
	}
	if result.Score > 1.0 {
		t.Errorf("score exceeds 1.0: %v", result.Score)
	}
}

func TestCalculate_DataCompleteness(t *testing.T) {
	m := NewModel()

	state := &model.ResolvedState{
		Interval: model.YearInterval{Start: 1880, End: 1880},
		Dominant: make([]model.ResolvedEntity, 2),
	}
	result := m.Calculate(state, &model.BoundarySet{})

	found := false
	for _, f := range result.Factors {
		if f.Kind == model.FactorData && strings.Contains(f.Description, "only 2 entities") {
			found = true
			if f.Severity != 0.3 {
				t.Errorf("severity = %v, want 0.3", f.Severity)
			}
		}
	}
	if !found {
		t.Errorf("missing limited-data factor: %+v", result.Factors)
	}
}

func TestCalculate_Notes(t *testing.T) {
	m := NewModel()

	state := &model.ResolvedState{
		Interval: model.YearInterval{Start: 1650, End: 1650},
		Dominant: make([]model.ResolvedEntity, 6),
	}
	boundaries := &model.BoundarySet{Polygons: make([]model.Polygon, 6)}

	result := m.Calculate(state, boundaries)

	foundPre1700 := false
	foundClosing := false
	for _, note := range result.Notes {
		if strings.Contains(note, "Pre-1700 maps have higher uncertainty") {
			foundPre1700 = true
		}
		if strings.Contains(note, "Consult historical atlases") {
			foundClosing = true
		}
	}
	if !foundPre1700 {
		t.Errorf("missing pre-1700 note: %v", result.Notes)
	}
	if !foundClosing {
		t.Errorf("missing approximation caveat: %v", result.Notes)
	}
}

func TestCalculate_HighImpactNote(t *testing.T) {
	m := NewModel()

	// WWII single year: transitional severity 0.8 * min(1, 1/1+0.3) = 0.8.
	state := &model.ResolvedState{
		Interval: model.YearInterval{Start: 1943, End: 1943},
		Dominant: make([]model.ResolvedEntity, 6),
	}
	boundaries := &model.BoundarySet{Polygons: make([]model.Polygon, 6)}

	result := m.Calculate(state, boundaries)

	found := false
	for _, note := range result.Notes {
		if strings.Contains(note, "High-impact factors:") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing high-impact note: %v", result.Notes)
	}
}

func TestQuickRiskAssessment(t *testing.T) {
	m := NewModel()

	assessment, err := m.QuickRiskAssessment(1988, 1995)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Span 8 > 5 adds 0.1; Soviet Collapse and Yugoslav Wars overlap.
	want := baseUncertainty + 0.1 + 0.15*2
	if math.Abs(assessment.Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", assessment.Score, want)
	}
	if assessment.Risk != model.RiskHigh {
		t.Errorf("risk = %s, want high", assessment.Risk)
	}
	if len(assessment.TransitionalPeriods) != 2 {
		t.Errorf("periods = %v", assessment.TransitionalPeriods)
	}
}

func TestQuickRiskAssessment_WideRange(t *testing.T) {
	m := NewModel()

	assessment, err := m.QuickRiskAssessment(1900, 1995)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Score != 1.0 {
		t.Errorf("score = %v, want capped at 1.0", assessment.Score)
	}
	if assessment.Risk != model.RiskHigh {
		t.Errorf("risk = %s, want high", assessment.Risk)
	}

	foundSplit := false
	for _, rec := range assessment.Recommendations {
		if strings.Contains(rec, "separate maps for smaller time periods") {
			foundSplit = true
		}
	}
	if !foundSplit {
		t.Errorf("missing split recommendation: %v", assessment.Recommendations)
	}
}

func TestQuickRiskAssessment_StablePeriod(t *testing.T) {
	m := NewModel()

	assessment, err := m.QuickRiskAssessment(1860, 1862)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Score != baseUncertainty {
		t.Errorf("score = %v, want base", assessment.Score)
	}
	if assessment.Risk != model.RiskLow {
		t.Errorf("risk = %s, want low", assessment.Risk)
	}
	if len(assessment.Recommendations) != 1 ||
		!strings.Contains(assessment.Recommendations[0], "relatively stable") {
		t.Errorf("recommendations = %v", assessment.Recommendations)
	}
}

func TestQuickRiskAssessment_ReversedYears(t *testing.T) {
	m := NewModel()
	if _, err := m.QuickRiskAssessment(1995, 1988); err == nil {
		t.Errorf("expected error for reversed years")
	}
}
