package geodata

import (
	"encoding/json"
	"fmt"

	"github.com/ppiankov/chronomap/internal/model"
)

// nameProperties are tried in order when naming a feature. Different
// sources use different conventions; thenmap uses lowercase "name",
// Natural Earth derived sets use "NAME"/"ADMIN", the basemaps archive
// sometimes only has "sovereignt".
var nameProperties = []string{"name", "NAME", "ADMIN", "sovereignt"}

type geoJSONDoc struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
	// Set when the document is a bare Feature rather than a collection.
	Geometry   *geoJSONGeometry `json:"geometry"`
	Properties map[string]any   `json:"properties"`
	ID         any              `json:"id"`
}

type geoJSONFeature struct {
	Type       string           `json:"type"`
	Geometry   *geoJSONGeometry `json:"geometry"`
	Properties map[string]any   `json:"properties"`
	ID         any              `json:"id"`
}

type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseFeatureCollection extracts named polygon features from a GeoJSON
// document. Accepts both a FeatureCollection and a single Feature.
// Malformed or non-polygon features are skipped, not fatal: one bad
// feature should not discard a whole basemap.
func ParseFeatureCollection(data []byte) ([]model.GeoFeature, error) {
	var doc geoJSONDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	var rawFeatures []geoJSONFeature
	switch doc.Type {
	case "FeatureCollection":
		rawFeatures = doc.Features
	case "Feature":
		rawFeatures = []geoJSONFeature{{
			Type:       doc.Type,
			Geometry:   doc.Geometry,
			Properties: doc.Properties,
			ID:         doc.ID,
		}}
	default:
		return nil, fmt.Errorf("unsupported geojson type %q", doc.Type)
	}

	var features []model.GeoFeature
	for _, raw := range rawFeatures {
		feature, ok := convertFeature(raw)
		if !ok {
			continue
		}
		features = append(features, feature)
	}

	return features, nil
}

func convertFeature(raw geoJSONFeature) (model.GeoFeature, bool) {
	if raw.Geometry == nil {
		return model.GeoFeature{}, false
	}

	feature := model.GeoFeature{
		Name:         featureName(raw),
		GeometryType: raw.Geometry.Type,
		Properties:   raw.Properties,
	}

	switch raw.Geometry.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(raw.Geometry.Coordinates, &coords); err != nil {
			return model.GeoFeature{}, false
		}
		feature.Polygon = coords
	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(raw.Geometry.Coordinates, &coords); err != nil {
			return model.GeoFeature{}, false
		}
		feature.MultiPolygon = coords
	default:
		return model.GeoFeature{}, false
	}

	return feature, true
}

// featureName resolves a display name from the property conventions in
// precedence order, falling back to the id and then "Unknown".
func featureName(raw geoJSONFeature) string {
	for _, key := range nameProperties {
		if v, ok := raw.Properties[key]; ok && v != nil {
			if s := fmt.Sprint(v); s != "" {
				return s
			}
		}
	}
	if v, ok := raw.Properties["id"]; ok && v != nil {
		if s := fmt.Sprint(v); s != "" {
			return s
		}
	}
	if raw.ID != nil {
		return fmt.Sprint(raw.ID)
	}
	return "Unknown"
}
