package render

import (
	"fmt"
	"strings"

	"github.com/ppiankov/chronomap/internal/model"
)

const cityMarkerRadius = 4

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// RenderSVG draws a boundary set as an SVG document.
func RenderSVG(cfg Config, boundaries *model.BoundarySet) []byte {
	p := cfg.palette()
	var b strings.Builder

	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	fmt.Fprintf(&b, "<!-- Period: %s -->\n", boundaries.Interval)

	b.WriteString("<defs>\n  <style>\n")
	fmt.Fprintf(&b, "    .ocean { fill: %s; }\n", p.ocean)
	fmt.Fprintf(&b, "    .land { fill: %s; stroke: %s; stroke-width: 1; }\n", p.land, p.border)
	fmt.Fprintf(&b, "    .label { font-family: \"Times New Roman\", serif; font-size: %dpx; fill: %s; }\n",
		cfg.FontSize, p.text)
	fmt.Fprintf(&b, "    .title { font-family: \"Times New Roman\", serif; font-size: %dpx; fill: %s; font-weight: bold; }\n",
		cfg.TitleFontSize, p.title)
	fmt.Fprintf(&b, "    .uncertainty { fill: %s; fill-opacity: 0.3; stroke: #FF8C00; stroke-width: 1; stroke-dasharray: 5,3; }\n",
		p.uncertainty)
	b.WriteString("    .city { fill: #8B4513; stroke: #000000; stroke-width: 1; }\n")
	fmt.Fprintf(&b, "    .grid { stroke: %s; stroke-width: 0.5; }\n", p.grid)
	b.WriteString("  </style>\n</defs>\n")

	b.WriteString(`<rect class="ocean" width="100%" height="100%"/>` + "\n")

	if cfg.Style == StyleAntique {
		writeGrid(&b, cfg)
	}

	if cfg.ShowUncertainty {
		for _, region := range boundaries.UncertaintyRegions {
			fmt.Fprintf(&b, `<path class="uncertainty" d="%s"/>`+"\n",
				polygonPath(cfg, region.Polygon))
		}
	}

	for _, polygon := range boundaries.Polygons {
		if polygon.EntityType == model.EntityCity {
			continue
		}
		fmt.Fprintf(&b, `<path class="land" style="fill: %s;" d="%s"/>`+"\n",
			polygon.FillColor, polygonPath(cfg, polygon))
	}

	for _, marker := range boundaries.Polygons {
		if marker.EntityType != model.EntityCity {
			continue
		}
		center := marker.Centroid()
		fmt.Fprintf(&b, `<circle class="city" cx="%.1f" cy="%.1f" r="%d"/>`+"\n",
			cfg.lonToX(center.X), cfg.latToY(center.Y), cityMarkerRadius)
	}

	if cfg.ShowLabels {
		for _, polygon := range boundaries.Labeled() {
			anchor := polygon.LabelPoint()
			fmt.Fprintf(&b,
				`<text class="label" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				cfg.lonToX(anchor.X), cfg.latToY(anchor.Y), textEscaper.Replace(polygon.EntityName))
		}
	}

	title := cfg.Title
	if title == "" {
		title = fmt.Sprintf("World Map: %s", boundaries.Interval)
	}
	fmt.Fprintf(&b, `<text class="title" x="%d" y="30" text-anchor="middle">%s</text>`+"\n",
		cfg.Width/2, textEscaper.Replace(title))

	b.WriteString("</svg>\n")

	return []byte(b.String())
}

// writeGrid draws graticule lines every 30 degrees.
func writeGrid(b *strings.Builder, cfg Config) {
	for lon := -180; lon <= 180; lon += 30 {
		x := cfg.lonToX(float64(lon))
		fmt.Fprintf(b, `<line class="grid" x1="%.1f" y1="0" x2="%.1f" y2="%d"/>`+"\n",
			x, x, cfg.Height)
	}
	for lat := -60; lat <= 90; lat += 30 {
		y := cfg.latToY(float64(lat))
		fmt.Fprintf(b, `<line class="grid" x1="0" y1="%.1f" x2="%d" y2="%.1f"/>`+"\n",
			y, cfg.Width, y)
	}
}

// polygonPath converts a polygon to SVG path data in pixel space.
func polygonPath(cfg Config, polygon model.Polygon) string {
	if len(polygon.Points) == 0 {
		return ""
	}

	var parts []string
	for i, point := range polygon.Points {
		x := cfg.lonToX(point.X)
		y := cfg.latToY(point.Y)
		if i == 0 {
			parts = append(parts, fmt.Sprintf("M %.1f %.1f", x, y))
		} else {
			parts = append(parts, fmt.Sprintf("L %.1f %.1f", x, y))
		}
	}
	parts = append(parts, "Z")

	return strings.Join(parts, " ")
}
