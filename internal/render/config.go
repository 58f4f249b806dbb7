// Package render draws boundary sets as map images in an old-world
// cartographic style. SVG is the primary format; PNG is rasterized
// in-process with the standard image libraries.
package render

import "github.com/ppiankov/chronomap/internal/model"

// Style selects the color palette.
type Style string

const (
	StyleAntique Style = "antique"
	StyleModern  Style = "modern"
)

// Viewport is the lon/lat window projected onto the image. The default
// world view clips the extreme polar regions, which carry no borders
// worth drawing.
type Viewport struct {
	MinLon float64
	MaxLon float64
	MinLat float64
	MaxLat float64
}

// WorldViewport is the default equirectangular window.
var WorldViewport = Viewport{MinLon: -180, MaxLon: 180, MinLat: -60, MaxLat: 85}

// RegionViewports are the named zoom presets accepted by the CLI.
var RegionViewports = map[string]Viewport{
	"world":    WorldViewport,
	"europe":   {MinLon: -25, MaxLon: 45, MinLat: 34, MaxLat: 72},
	"asia":     {MinLon: 25, MaxLon: 150, MinLat: -10, MaxLat: 60},
	"africa":   {MinLon: -20, MaxLon: 55, MinLat: -35, MaxLat: 38},
	"americas": {MinLon: -170, MaxLon: -30, MinLat: -60, MaxLat: 75},
}

// Config controls one render run.
type Config struct {
	Width           int
	Height          int
	Style           Style
	ShowLabels      bool
	ShowUncertainty bool
	Title           string
	FontSize        int
	TitleFontSize   int
	Viewport        Viewport
}

// DefaultRenderConfig returns the renderer defaults: antique world map
// at 1200x800 with labels and uncertainty shading on.
func DefaultRenderConfig() Config {
	return Config{
		Width:           1200,
		Height:          800,
		Style:           StyleAntique,
		ShowLabels:      true,
		ShowUncertainty: true,
		FontSize:        12,
		TitleFontSize:   24,
		Viewport:        WorldViewport,
	}
}

// FromModel builds a render config from the application config.
func FromModel(cfg model.RenderConfig) Config {
	out := DefaultRenderConfig()
	if cfg.Width > 0 {
		out.Width = cfg.Width
	}
	if cfg.Height > 0 {
		out.Height = cfg.Height
	}
	if cfg.Style != "" {
		out.Style = Style(cfg.Style)
	}
	out.ShowLabels = cfg.ShowLabels
	out.ShowUncertainty = cfg.ShowUncertainty
	return out
}

// palette is the per-style color set.
type palette struct {
	ocean       string
	land        string
	border      string
	text        string
	title       string
	grid        string
	uncertainty string
}

var antiquePalette = palette{
	ocean:       "#B8C9D4",
	land:        "#E8D4B8",
	border:      "#4A3728",
	text:        "#2F1810",
	title:       "#1A0F0A",
	grid:        "#A09080",
	uncertainty: "#FFE4B5",
}

var modernPalette = palette{
	ocean:       "#4A90C2",
	land:        "#E5E5E0",
	border:      "#333333",
	text:        "#000000",
	title:       "#000000",
	grid:        "#CCCCCC",
	uncertainty: "#FFFF99",
}

func (c Config) palette() palette {
	if c.Style == StyleModern {
		return modernPalette
	}
	return antiquePalette
}

// lonToX projects longitude into pixel space.
func (c Config) lonToX(lon float64) float64 {
	v := c.Viewport
	return (lon - v.MinLon) / (v.MaxLon - v.MinLon) * float64(c.Width)
}

// latToY projects latitude into pixel space, inverted for screen
// coordinates.
func (c Config) latToY(lat float64) float64 {
	v := c.Viewport
	return (v.MaxLat - lat) / (v.MaxLat - v.MinLat) * float64(c.Height)
}
