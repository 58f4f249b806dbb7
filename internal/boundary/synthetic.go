package boundary

import (
	"math"

	"github.com/ppiankov/chronomap/internal/model"
)

const defaultBorderColor = "#333333"

// Uncertainty overlay styling: semi-transparent yellow fill with a dark
// orange border.
const (
	uncertaintyFillColor   = "#FFFF0033"
	uncertaintyBorderColor = "#FF8C00"
	uncertaintyScale       = 2.0
)

// regionCentroids are approximate (lon, lat) anchor positions for
// entities the synthetic path can draw. Entities absent from this table
// are skipped rather than drawn at an invented location.
var regionCentroids = map[string]model.Point{
	// Europe
	"Germany":        {X: 10.4, Y: 51.2},
	"East Germany":   {X: 12.4, Y: 52.0},
	"West Germany":   {X: 8.4, Y: 50.5},
	"France":         {X: 2.2, Y: 46.6},
	"United Kingdom": {X: -2.0, Y: 54.0},
	"Poland":         {X: 19.4, Y: 52.0},
	"Czechoslovakia": {X: 15.0, Y: 49.8},
	"Czech Republic": {X: 15.5, Y: 49.8},
	"Slovakia":       {X: 19.5, Y: 48.7},
	"Austria":        {X: 14.6, Y: 47.7},
	"Hungary":        {X: 19.5, Y: 47.2},
	"Romania":        {X: 25.0, Y: 46.0},
	"Bulgaria":       {X: 25.5, Y: 42.7},
	"Yugoslavia":     {X: 19.8, Y: 44.0},
	"Serbia":         {X: 21.0, Y: 44.0},
	"Croatia":        {X: 16.0, Y: 45.2},
	"Greece":         {X: 22.0, Y: 39.0},
	"Italy":          {X: 12.5, Y: 42.8},
	"Spain":          {X: -3.7, Y: 40.4},
	"Portugal":       {X: -8.2, Y: 39.4},
	"Netherlands":    {X: 5.3, Y: 52.1},
	"Belgium":        {X: 4.4, Y: 50.8},
	"Switzerland":    {X: 8.2, Y: 46.8},
	"Sweden":         {X: 18.6, Y: 60.1},
	"Norway":         {X: 8.5, Y: 61.0},
	"Denmark":        {X: 9.5, Y: 56.3},
	"Finland":        {X: 26.0, Y: 64.0},

	// Russia and the Soviet sphere
	"Soviet Union":       {X: 60.0, Y: 55.0},
	"USSR":               {X: 60.0, Y: 55.0},
	"Russian Empire":     {X: 60.0, Y: 55.0},
	"Russian Federation": {X: 60.0, Y: 55.0},
	"Russia":             {X: 60.0, Y: 55.0},

	// Middle East
	"Ottoman Empire": {X: 35.0, Y: 39.0},
	"Turkey":         {X: 35.0, Y: 39.0},
	"Israel":         {X: 35.0, Y: 31.5},
	"Palestine":      {X: 35.0, Y: 31.5},
	"Saudi Arabia":   {X: 45.0, Y: 24.0},
	"Iraq":           {X: 44.0, Y: 33.2},
	"Iran":           {X: 53.7, Y: 32.4},
	"Persia":         {X: 53.7, Y: 32.4},

	// Asia
	"China":     {X: 105.0, Y: 35.0},
	"Japan":     {X: 138.3, Y: 36.2},
	"India":     {X: 78.9, Y: 20.6},
	"Siam":      {X: 101.0, Y: 15.0},
	"Thailand":  {X: 101.0, Y: 15.0},
	"Burma":     {X: 96.0, Y: 22.0},
	"Myanmar":   {X: 96.0, Y: 22.0},
	"Vietnam":   {X: 108.0, Y: 14.0},
	"Ceylon":    {X: 80.8, Y: 7.9},
	"Sri Lanka": {X: 80.8, Y: 7.9},

	// Africa
	"South Africa":                 {X: 24.0, Y: -29.0},
	"Egypt":                        {X: 30.0, Y: 27.0},
	"Rhodesia":                     {X: 29.0, Y: -18.0},
	"Zimbabwe":                     {X: 29.0, Y: -18.0},
	"Zaire":                        {X: 23.0, Y: -3.0},
	"Democratic Republic of Congo": {X: 23.0, Y: -3.0},
	"Congo":                        {X: 23.0, Y: -3.0},

	// Americas
	"United States": {X: -98.6, Y: 39.8},
	"Canada":        {X: -106.3, Y: 56.1},
	"Mexico":        {X: -102.5, Y: 23.6},
	"Brazil":        {X: -51.9, Y: -14.2},
	"Argentina":     {X: -63.6, Y: -38.4},

	// Cities
	"Constantinople":   {X: 28.98, Y: 41.01},
	"Istanbul":         {X: 28.98, Y: 41.01},
	"Leningrad":        {X: 30.31, Y: 59.94},
	"St. Petersburg":   {X: 30.31, Y: 59.94},
	"Petrograd":        {X: 30.31, Y: 59.94},
	"Bombay":           {X: 72.88, Y: 19.08},
	"Mumbai":           {X: 72.88, Y: 19.08},
	"Peking":           {X: 116.41, Y: 39.90},
	"Beijing":          {X: 116.41, Y: 39.90},
	"Saigon":           {X: 106.66, Y: 10.82},
	"Ho Chi Minh City": {X: 106.66, Y: 10.82},
}

// entityColorPalette overrides the per-type fills for entities with a
// conventional map color.
var entityColorPalette = map[string]string{
	"Soviet Union":   "#CD5C5C",
	"USSR":           "#CD5C5C",
	"East Germany":   "#BC8F8F",
	"West Germany":   "#B8860B",
	"Germany":        "#DAA520",
	"Ottoman Empire": "#8B0000",
	"British Empire": "#DC143C",
}

var typeColorPalette = map[model.EntityType]string{
	model.EntityCountry:   "#E8D4B8",
	model.EntityEmpire:    "#D4A574",
	model.EntityTerritory: "#C9B896",
	model.EntityCity:      "#8B4513",
}

// entityColors returns the fill and border for an entity, preferring
// the per-entity palette over the per-type one.
func entityColors(name string, t model.EntityType) (fill, border string) {
	if c, ok := entityColorPalette[name]; ok {
		return c, defaultBorderColor
	}
	if c, ok := typeColorPalette[t]; ok {
		return c, defaultBorderColor
	}
	return "#CCCCCC", defaultBorderColor
}

// centroidFor looks up the anchor position by name, then canonical name.
func centroidFor(entity model.ResolvedEntity) (model.Point, bool) {
	if p, ok := regionCentroids[entity.Name()]; ok {
		return p, true
	}
	if p, ok := regionCentroids[entity.CanonicalName()]; ok {
		return p, true
	}
	return model.Point{}, false
}

// syntheticPolygon builds a template shape for an entity: a small
// diamond for cities, an irregular octagon sized by entity type for
// everything else. Entities with no known anchor position are skipped.
func syntheticPolygon(entity model.ResolvedEntity) (model.Polygon, bool) {
	center, ok := centroidFor(entity)
	if !ok {
		return model.Polygon{}, false
	}

	var points []model.Point
	switch entity.Entity.Type {
	case model.EntityCity:
		points = cityDiamond(center)
	case model.EntityEmpire:
		points = territoryRing(center, 3.0)
	default:
		points = territoryRing(center, 1.5)
	}

	fill, border := entityColors(entity.Name(), entity.Entity.Type)
	anchor := center

	return model.Polygon{
		Points:      points,
		EntityName:  entity.Name(),
		EntityType:  entity.Entity.Type,
		FillColor:   fill,
		BorderColor: border,
		LabelAnchor: &anchor,
		Uncertainty: 1 - entity.Confidence,
		Meta: map[string]any{
			"valid_range":    [2]int{entity.Entity.ValidInterval.Start, entity.Entity.ValidInterval.End},
			"canonical_name": entity.CanonicalName(),
			"overlap":        string(entity.Overlap),
		},
	}, true
}

// uncertaintyPolygon is the shaded overlay shape for a low-confidence
// entity: the territory ring scaled up, in the warning palette.
func uncertaintyPolygon(entity model.ResolvedEntity) (model.Polygon, bool) {
	center, ok := centroidFor(entity)
	if !ok {
		return model.Polygon{}, false
	}

	return model.Polygon{
		Points:      territoryRing(center, uncertaintyScale),
		EntityName:  entity.Name() + " (uncertain)",
		EntityType:  entity.Entity.Type,
		FillColor:   uncertaintyFillColor,
		BorderColor: uncertaintyBorderColor,
		Uncertainty: 1 - entity.Confidence,
	}, true
}

// territoryRing builds an irregular octagon around a center. The radius
// wobbles with vertex index and latitude is flattened so the shape
// reads as territory rather than a circle stamp.
func territoryRing(center model.Point, scale float64) []model.Point {
	const vertices = 8
	baseRadius := 5.0 * scale

	points := make([]model.Point, 0, vertices)
	for i := 0; i < vertices; i++ {
		angle := 2 * math.Pi * float64(i) / vertices
		radius := baseRadius * (0.8 + 0.4*(float64(i%3)/3.0))
		points = append(points, model.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle)*0.7,
		})
	}

	return points
}

// cityDiamond builds the small marker shape for a city.
func cityDiamond(center model.Point) []model.Point {
	const size = 0.3
	return []model.Point{
		{X: center.X, Y: center.Y + size},
		{X: center.X + size, Y: center.Y},
		{X: center.X, Y: center.Y - size},
		{X: center.X - size, Y: center.Y},
	}
}

// AvailableRegions lists every entity name the synthetic path can place.
func AvailableRegions() []string {
	names := make([]string, 0, len(regionCentroids))
	for name := range regionCentroids {
		names = append(names, name)
	}
	return names
}
