package model

// Point is a 2D coordinate. For geographic shapes X is longitude and Y
// is latitude; the renderer projects into pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is a renderable territory shape.
type Polygon struct {
	Points      []Point        `json:"points"`
	EntityName  string         `json:"entity_name"`
	EntityType  EntityType     `json:"entity_type"`
	FillColor   string         `json:"fill_color"`
	BorderColor string         `json:"border_color"`
	LabelAnchor *Point         `json:"label_anchor,omitempty"`
	Uncertainty float64        `json:"uncertainty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// Centroid is the arithmetic mean of the vertices. Derived, not stored.
func (p Polygon) Centroid() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, pt := range p.Points {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p.Points))
	return Point{X: sx / n, Y: sy / n}
}

// LabelPoint is the explicit anchor when set, else the centroid.
func (p Polygon) LabelPoint() Point {
	if p.LabelAnchor != nil {
		return *p.LabelAnchor
	}
	return p.Centroid()
}

// UncertaintyRegion marks an area whose boundaries are unreliable.
type UncertaintyRegion struct {
	Polygon  Polygon  `json:"polygon"`
	Reason   string   `json:"reason"`
	Entities []string `json:"entities"`
	Severity float64  `json:"severity"`
}

// BoundaryProvenance records which path produced a boundary set, so
// callers and tests can assert on it instead of parsing notes strings.
type BoundaryProvenance string

const (
	ProvenanceRealData  BoundaryProvenance = "real"
	ProvenanceSynthetic BoundaryProvenance = "synthetic"
)

// BoundarySet is the boundary engine's complete output for one query.
type BoundarySet struct {
	Polygons           []Polygon           `json:"polygons"`
	UncertaintyRegions []UncertaintyRegion `json:"uncertainty_regions"`
	Interval           YearInterval        `json:"interval"`
	Provenance         BoundaryProvenance  `json:"provenance"`
	Source             string              `json:"source,omitempty"`
	Notes              []string            `json:"notes"`
}

// Labeled returns the polygons that carry a label.
func (b *BoundarySet) Labeled() []Polygon {
	var out []Polygon
	for _, p := range b.Polygons {
		if p.EntityName != "" {
			out = append(out, p)
		}
	}
	return out
}

// GeoFeature is one named feature from an upstream geometry source.
// Exactly one of Polygon or MultiPolygon is populated, matching
// GeometryType.
type GeoFeature struct {
	Name         string `json:"name"`
	GeometryType string `json:"geometry_type"`
	// Polygon: ring -> point -> [lon, lat]. The first ring is the
	// exterior boundary.
	Polygon [][][]float64 `json:"polygon,omitempty"`
	// MultiPolygon: part -> ring -> point -> [lon, lat].
	MultiPolygon [][][][]float64 `json:"multi_polygon,omitempty"`
	Properties   map[string]any  `json:"properties,omitempty"`
}

// GeoDataResult wraps a fetch outcome. Failure is a value, never a
// panic or an error return: the boundary engine treats it as a normal
// trigger for its fallback path.
type GeoDataResult struct {
	Success       bool         `json:"success"`
	Features      []GeoFeature `json:"features,omitempty"`
	Source        string       `json:"source"`
	DateUsed      string       `json:"date_used,omitempty"`
	RequestedYear int          `json:"requested_year"`
	// ActualYear is the reference year actually served; it may differ
	// from RequestedYear due to nearest-year fallback.
	ActualYear int    `json:"actual_year,omitempty"`
	Cached     bool   `json:"cached,omitempty"`
	Error      string `json:"error,omitempty"`
}
