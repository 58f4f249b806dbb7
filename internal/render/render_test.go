package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/ppiankov/chronomap/internal/model"
)

func testBoundaries() *model.BoundarySet {
	anchor := model.Point{X: 60, Y: 55}
	return &model.BoundarySet{
		Interval:   model.YearInterval{Start: 1970, End: 1970},
		Provenance: model.ProvenanceSynthetic,
		Source:     "synthetic",
		Polygons: []model.Polygon{
			{
				Points:      []model.Point{{X: 50, Y: 50}, {X: 70, Y: 50}, {X: 70, Y: 60}, {X: 50, Y: 60}},
				EntityName:  "USSR",
				EntityType:  model.EntityCountry,
				FillColor:   "#CD5C5C",
				BorderColor: "#333333",
				LabelAnchor: &anchor,
			},
			{
				Points:     []model.Point{{X: 30.31, Y: 60.24}, {X: 30.61, Y: 59.94}, {X: 30.31, Y: 59.64}, {X: 30.01, Y: 59.94}},
				EntityName: "Leningrad",
				EntityType: model.EntityCity,
				FillColor:  "#8B4513",
			},
		},
		UncertaintyRegions: []model.UncertaintyRegion{
			{
				Polygon: model.Polygon{
					Points:     []model.Point{{X: 40, Y: 40}, {X: 80, Y: 40}, {X: 80, Y: 70}, {X: 40, Y: 70}},
					EntityName: "USSR (uncertain)",
					FillColor:  "#FFFF0033",
				},
				Reason:   "USSR ceased to exist during the period",
				Entities: []string{"USSR"},
				Severity: 0.25,
			},
		},
	}
}

func TestRenderSVG_Structure(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Title = "Historical Map: 1970"

	svg := string(RenderSVG(cfg, testBoundaries()))

	if !strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing xml declaration")
	}
	if !strings.Contains(svg, `width="1200" height="800"`) {
		t.Errorf("missing dimensions")
	}
	if !strings.Contains(svg, ">Historical Map: 1970</text>") {
		t.Errorf("missing title text")
	}
	if !strings.Contains(svg, ">USSR</text>") {
		t.Errorf("missing label")
	}
	if !strings.Contains(svg, `class="uncertainty"`) {
		t.Errorf("missing uncertainty overlay")
	}
	if !strings.Contains(svg, `class="city"`) {
		t.Errorf("missing city marker")
	}
	if !strings.Contains(svg, `class="grid"`) {
		t.Errorf("antique style should draw a graticule")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Errorf("unterminated document")
	}
}

func TestRenderSVG_Toggles(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.ShowLabels = false
	cfg.ShowUncertainty = false
	cfg.Style = StyleModern

	svg := string(RenderSVG(cfg, testBoundaries()))

	if strings.Contains(svg, ">USSR</text>") {
		t.Errorf("labels rendered with ShowLabels off")
	}
	if strings.Contains(svg, `<path class="uncertainty"`) {
		t.Errorf("uncertainty rendered with ShowUncertainty off")
	}
	if strings.Contains(svg, `<line class="grid"`) {
		t.Errorf("modern style should not draw a graticule")
	}
}

func TestRenderSVG_DefaultTitleAndEscaping(t *testing.T) {
	boundaries := testBoundaries()
	boundaries.Polygons[0].EntityName = "A & B <Empire>"

	svg := string(RenderSVG(DefaultRenderConfig(), boundaries))

	if !strings.Contains(svg, ">World Map: 1970</text>") {
		t.Errorf("missing fallback title")
	}
	if !strings.Contains(svg, "A &amp; B &lt;Empire&gt;") {
		t.Errorf("label not escaped")
	}
}

func TestRenderPNG_Decodes(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Width = 300
	cfg.Height = 200

	data, err := RenderPNG(cfg, testBoundaries())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 200 {
		t.Errorf("dimensions = %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b uint8
		a       uint8
	}{
		{"#CD5C5C", 0xCD, 0x5C, 0x5C, 255},
		{"#fff", 255, 255, 255, 255},
		{"#FFFF0033", 0xFF, 0xFF, 0x00, 0x33},
	}
	for _, tc := range cases {
		c := parseHexColor(tc.in)
		if c.R != tc.r || c.G != tc.g || c.B != tc.b || c.A != tc.a {
			t.Errorf("parseHexColor(%q) = %+v", tc.in, c)
		}
	}

	gray := parseHexColor("not-a-color")
	if gray.R != 128 || gray.G != 128 || gray.B != 128 {
		t.Errorf("fallback = %+v, want gray", gray)
	}
}

func TestProjection(t *testing.T) {
	cfg := DefaultRenderConfig()

	if x := cfg.lonToX(-180); x != 0 {
		t.Errorf("lonToX(-180) = %v", x)
	}
	if x := cfg.lonToX(180); x != 1200 {
		t.Errorf("lonToX(180) = %v", x)
	}
	if y := cfg.latToY(85); y != 0 {
		t.Errorf("latToY(85) = %v", y)
	}
	if y := cfg.latToY(-60); y != 800 {
		t.Errorf("latToY(-60) = %v", y)
	}

	europe := cfg
	europe.Viewport = RegionViewports["europe"]
	if x := europe.lonToX(-25); x != 0 {
		t.Errorf("europe lonToX(-25) = %v", x)
	}
}

func TestFromModel(t *testing.T) {
	cfg := FromModel(model.RenderConfig{
		Width:           600,
		Style:           "modern",
		ShowLabels:      true,
		ShowUncertainty: false,
	})

	if cfg.Width != 600 || cfg.Height != 800 {
		t.Errorf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Style != StyleModern {
		t.Errorf("style = %s", cfg.Style)
	}
	if cfg.ShowUncertainty {
		t.Errorf("ShowUncertainty should be off")
	}
}
