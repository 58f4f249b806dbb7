package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sort"

	"github.com/ppiankov/chronomap/internal/model"
)

// RenderPNG rasterizes a boundary set. Fill uses an even-odd scanline
// pass per polygon; borders and grid are drawn as 1px lines. Labels are
// SVG-only, so PNG output favors geometry over typography.
func RenderPNG(cfg Config, boundaries *model.BoundarySet) ([]byte, error) {
	p := cfg.palette()

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: parseHexColor(p.ocean)}, image.Point{}, draw.Src)

	if cfg.Style == StyleAntique {
		gridColor := parseHexColor(p.grid)
		for lon := -180; lon <= 180; lon += 30 {
			x := int(cfg.lonToX(float64(lon)))
			drawVLine(img, x, gridColor)
		}
		for lat := -60; lat <= 90; lat += 30 {
			y := int(cfg.latToY(float64(lat)))
			drawHLine(img, y, gridColor)
		}
	}

	if cfg.ShowUncertainty {
		for _, region := range boundaries.UncertaintyRegions {
			fillPolygon(img, cfg, region.Polygon.Points, blend(parseHexColor(p.uncertainty), parseHexColor(p.ocean), 0.3))
		}
	}

	for _, polygon := range boundaries.Polygons {
		if polygon.EntityType == model.EntityCity {
			continue
		}
		fillPolygon(img, cfg, polygon.Points, parseHexColor(polygon.FillColor))
		strokePolygon(img, cfg, polygon.Points, parseHexColor(polygon.BorderColor))
	}

	for _, marker := range boundaries.Polygons {
		if marker.EntityType != model.EntityCity {
			continue
		}
		center := marker.Centroid()
		drawDisc(img, int(cfg.lonToX(center.X)), int(cfg.latToY(center.Y)),
			cityMarkerRadius, parseHexColor("#8B4513"))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// fillPolygon runs an even-odd scanline fill over the projected points.
func fillPolygon(img *image.RGBA, cfg Config, points []model.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}

	px := make([]float64, len(points))
	py := make([]float64, len(points))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, point := range points {
		px[i] = cfg.lonToX(point.X)
		py[i] = cfg.latToY(point.Y)
		minY = math.Min(minY, py[i])
		maxY = math.Max(maxY, py[i])
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), cfg.Height-1)

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y) + 0.5

		var crossings []float64
		for i := range points {
			j := (i + 1) % len(points)
			y1, y2 := py[i], py[j]
			if (y1 <= fy && y2 > fy) || (y2 <= fy && y1 > fy) {
				t := (fy - y1) / (y2 - y1)
				crossings = append(crossings, px[i]+t*(px[j]-px[i]))
			}
		}
		sort.Float64s(crossings)

		for k := 0; k+1 < len(crossings); k += 2 {
			x1 := max(int(math.Ceil(crossings[k])), 0)
			x2 := min(int(math.Floor(crossings[k+1])), cfg.Width-1)
			for x := x1; x <= x2; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// strokePolygon draws the outline with Bresenham segments.
func strokePolygon(img *image.RGBA, cfg Config, points []model.Point, c color.RGBA) {
	for i := range points {
		j := (i + 1) % len(points)
		drawLine(img,
			int(cfg.lonToX(points[i].X)), int(cfg.latToY(points[i].Y)),
			int(cfg.lonToX(points[j].X)), int(cfg.latToY(points[j].Y)), c)
	}
}

func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	bounds := img.Bounds()
	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, c)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func drawVLine(img *image.RGBA, x int, c color.RGBA) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		img.SetRGBA(x, y, c)
	}
}

func drawHLine(img *image.RGBA, y int, c color.RGBA) {
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		img.SetRGBA(x, y, c)
	}
}

func drawDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	bounds := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r && image.Pt(cx+dx, cy+dy).In(bounds) {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

// parseHexColor decodes #RGB, #RRGGBB or #RRGGBBAA. Unparseable input
// falls back to mid-gray.
func parseHexColor(s string) color.RGBA {
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}

	if len(s) == 0 || s[0] != '#' {
		return gray
	}
	hex := s[1:]

	switch len(hex) {
	case 3:
		r, ok1 := hexNibble(hex[0])
		g, ok2 := hexNibble(hex[1])
		b, ok3 := hexNibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return gray
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}
	case 6, 8:
		var vals [4]uint8
		vals[3] = 255
		for i := 0; i*2 < len(hex); i++ {
			hi, ok1 := hexNibble(hex[i*2])
			lo, ok2 := hexNibble(hex[i*2+1])
			if !ok1 || !ok2 {
				return gray
			}
			vals[i] = hi<<4 | lo
		}
		return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}
	default:
		return gray
	}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// blend mixes fg over bg at the given opacity.
func blend(fg, bg color.RGBA, opacity float64) color.RGBA {
	mix := func(f, b uint8) uint8 {
		return uint8(float64(f)*opacity + float64(b)*(1-opacity))
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 255}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
