package model

// FactorKind categorizes an uncertainty factor.
type FactorKind string

const (
	FactorTemporal       FactorKind = "temporal"
	FactorTransitional   FactorKind = "transitional"
	FactorConflict       FactorKind = "conflict"
	FactorPartialOverlap FactorKind = "partial_overlap"
	FactorData           FactorKind = "data"
)

// RiskLevel is the three-tier classification derived from the overall
// uncertainty score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskFromScore maps a score onto the three tiers.
func RiskFromScore(score float64) RiskLevel {
	switch {
	case score < 0.2:
		return RiskLow
	case score < 0.5:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// UncertaintyFactor is one inspectable contribution to overall
// uncertainty.
type UncertaintyFactor struct {
	Kind             FactorKind `json:"kind"`
	Description      string     `json:"description"`
	Severity         float64    `json:"severity"`
	AffectedEntities []string   `json:"affected_entities,omitempty"`
	Recommendations  []string   `json:"recommendations,omitempty"`
}

// UncertaintyResult aggregates factors into one overall assessment.
type UncertaintyResult struct {
	Score   float64             `json:"uncertainty_score"`
	Factors []UncertaintyFactor `json:"factors"`
	Notes   []string            `json:"notes"`
}

// Confidence is the inverse of the uncertainty score.
func (r UncertaintyResult) Confidence() float64 {
	return 1.0 - r.Score
}

// Risk classifies the overall score.
func (r UncertaintyResult) Risk() RiskLevel {
	return RiskFromScore(r.Score)
}

// RiskAssessment is the cheap pre-generation preview: span and
// transitional-window overlap only, no entity or boundary computation.
type RiskAssessment struct {
	Interval            YearInterval `json:"interval"`
	SpanYears           int          `json:"span_years"`
	Score               float64      `json:"risk_score"`
	Risk                RiskLevel    `json:"risk_level"`
	TransitionalPeriods []string     `json:"transitional_periods"`
	Recommendations     []string     `json:"recommendations"`
}
