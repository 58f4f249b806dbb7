package model

// OverlapKind classifies how an entity's validity interval relates to
// the requested interval.
type OverlapKind string

const (
	// OverlapFull: the entity's interval fully covers the request.
	OverlapFull OverlapKind = "full"
	// OverlapContained: the entity exists only inside the request.
	OverlapContained OverlapKind = "contained"
	// OverlapPartialStart: the entity's validity begins inside the request.
	OverlapPartialStart OverlapKind = "partial_start"
	// OverlapPartialEnd: the entity's validity ends inside the request.
	OverlapPartialEnd OverlapKind = "partial_end"
)

// ResolvedEntity is a knowledge entity annotated for one query.
// Created fresh per resolution call and never mutated afterwards; it is
// owned by the ResolvedState that produced it.
type ResolvedEntity struct {
	Entity       KnowledgeEntity `json:"entity"`
	Confidence   float64         `json:"confidence"`
	Overlap      OverlapKind     `json:"overlap_kind"`
	OverlapYears int             `json:"overlap_years"`
	Notes        []string        `json:"notes,omitempty"`
}

// Name is a shorthand for the underlying entity name.
func (r ResolvedEntity) Name() string { return r.Entity.Name }

// CanonicalName is a shorthand for the underlying canonical name.
func (r ResolvedEntity) CanonicalName() string { return r.Entity.CanonicalName }

// ConflictKind classifies a succession relationship between entities.
type ConflictKind string

const (
	ConflictSuccession ConflictKind = "succession"
	ConflictSplit      ConflictKind = "split"
	ConflictMerger     ConflictKind = "merger"
	ConflictDisputed   ConflictKind = "disputed"
)

// EntityConflict groups two or more resolved entities linked by a
// known succession relationship (split, merger, rename).
type EntityConflict struct {
	Entities    []ResolvedEntity `json:"entities"`
	Kind        ConflictKind     `json:"conflict_kind"`
	Description string           `json:"description"`
	Resolution  string           `json:"resolution"`
}

// EntityNames lists the names of the entities in the conflict group.
func (c EntityConflict) EntityNames() []string {
	names := make([]string, len(c.Entities))
	for i, e := range c.Entities {
		names[i] = e.Name()
	}
	return names
}

// ResolvedState is the complete snapshot of "what existed" for one
// query. Immutable once produced.
type ResolvedState struct {
	Interval    YearInterval     `json:"interval"`
	Entities    []ResolvedEntity `json:"entities"`
	Conflicts   []EntityConflict `json:"conflicts"`
	Dominant    []ResolvedEntity `json:"dominant_entities"`
	Assumptions []string         `json:"assumptions"`
	Midpoint    int              `json:"midpoint"`
	SingleYear  bool             `json:"single_year"`
}

// ByType filters the resolved entities by kind.
func (s *ResolvedState) ByType(t EntityType) []ResolvedEntity {
	var out []ResolvedEntity
	for _, e := range s.Entities {
		if e.Entity.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// DominantNames lists the names of the dominant entities in order.
func (s *ResolvedState) DominantNames() []string {
	names := make([]string, len(s.Dominant))
	for i, e := range s.Dominant {
		names[i] = e.Name()
	}
	return names
}
