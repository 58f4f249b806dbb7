// Package pipeline orchestrates map generation: parse the date, resolve
// the historical state, generate boundaries, assess uncertainty, render.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/chronomap/internal/boundary"
	"github.com/ppiankov/chronomap/internal/cache"
	"github.com/ppiankov/chronomap/internal/dateparse"
	"github.com/ppiankov/chronomap/internal/geodata"
	"github.com/ppiankov/chronomap/internal/knowledge"
	"github.com/ppiankov/chronomap/internal/model"
	"github.com/ppiankov/chronomap/internal/render"
	"github.com/ppiankov/chronomap/internal/resolve"
	"github.com/ppiankov/chronomap/internal/uncertainty"
)

// Format is the output image format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// GenerateRequest describes one map to produce.
type GenerateRequest struct {
	// Date is the raw user input, e.g. "1914" or "1918-1939".
	Date   string
	Format Format
	// Title overrides the generated title when non-empty.
	Title string
	// HideDate uses a generic title so the map can be shown without
	// revealing the period (quiz mode).
	HideDate bool
	// Region selects a zoom preset; empty means world view.
	Region string
}

// Result is the complete output of one generation run.
type Result struct {
	Image       []byte
	ImageFormat Format
	Interval    model.YearInterval
	State       *model.ResolvedState
	Boundaries  *model.BoundarySet
	Uncertainty *model.UncertaintyResult
	Assumptions []string
}

// Preview summarizes what generation would produce, without geometry
// fetching or rendering.
type Preview struct {
	Interval    model.YearInterval     `json:"interval"`
	SingleYear  bool                   `json:"single_year"`
	Midpoint    int                    `json:"midpoint"`
	EntityCount int                    `json:"entity_count"`
	Dominant    []string               `json:"dominant_entities"`
	Conflicts   []model.EntityConflict `json:"conflicts"`
	Risk        model.RiskAssessment   `json:"risk_assessment"`
	Assumptions []string               `json:"assumptions"`
}

// Pipeline wires the generation stages together. Construct once, reuse
// across requests.
type Pipeline struct {
	cfg      *model.Config
	parser   *dateparse.Parser
	resolver *resolve.Resolver
	engine   *boundary.Engine
	model    *uncertainty.Model

	// Progress output; nil means silent.
	progress io.Writer
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

// WithProgress directs stage progress output to w.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) { p.progress = w }
}

// WithKnowledgeBase substitutes the entity table.
func WithKnowledgeBase(kb *knowledge.Base) Option {
	return func(p *Pipeline) { p.resolver = resolve.NewResolver(kb) }
}

// New builds a pipeline from config. A nil config means defaults. The
// boundary cache is layered memory-over-disk unless caching is
// disabled.
func New(cfg *model.Config, opts ...Option) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	var fetcher *geodata.Fetcher
	if cfg.GeoData.UseRealData {
		var c cache.Cache
		if cfg.Cache.Enabled {
			c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		}
		fetcher = geodata.NewFetcher(cfg, c)
	}

	p := &Pipeline{
		cfg:      cfg,
		parser:   dateparse.NewParser(cfg.Parser.MinYear, cfg.Parser.MaxYear, cfg.Parser.AllowFuture),
		resolver: resolve.NewResolver(nil),
		engine:   boundary.NewEngine(fetcher),
		model:    uncertainty.NewModel(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Generate runs the full pipeline for one request.
func (p *Pipeline) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	p.printf("Generating map for: %s\n", req.Date)

	p.printf("  [1/5] Parsing date input...\n")
	parsed, err := p.parser.Parse(req.Date)
	if err != nil {
		return nil, err
	}
	p.printf("        Parsed: %s\n", parsed.Interval)

	p.printf("  [2/5] Resolving historical state...\n")
	state := p.resolver.Resolve(parsed)
	p.printf("        Found %d entities\n", len(state.Entities))
	p.printf("        Dominant: %d entities\n", len(state.Dominant))

	p.printf("  [3/5] Generating boundaries...\n")
	boundaries := p.engine.GenerateBoundaries(ctx, state)
	p.printf("        Generated %d polygons\n", len(boundaries.Polygons))

	p.printf("  [4/5] Calculating uncertainty...\n")
	assessment := p.model.Calculate(state, boundaries)
	p.printf("        Uncertainty: %.2f\n", assessment.Score)
	p.printf("        Risk level: %s\n", assessment.Risk())

	p.printf("  [5/5] Rendering map...\n")
	renderCfg := render.FromModel(p.cfg.Render)
	renderCfg.Title = mapTitle(req, parsed.Interval)
	if viewport, ok := render.RegionViewports[strings.ToLower(req.Region)]; ok {
		renderCfg.Viewport = viewport
	}

	format := req.Format
	if format == "" {
		format = FormatSVG
	}

	var image []byte
	switch format {
	case FormatSVG:
		image = render.RenderSVG(renderCfg, boundaries)
	case FormatPNG:
		image, err = render.RenderPNG(renderCfg, boundaries)
		if err != nil {
			return nil, fmt.Errorf("render png: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	p.printf("  Done!\n")

	assumptions := append(append([]string(nil), state.Assumptions...), boundaries.Notes...)

	return &Result{
		Image:       image,
		ImageFormat: format,
		Interval:    parsed.Interval,
		State:       state,
		Boundaries:  boundaries,
		Uncertainty: assessment,
		Assumptions: assumptions,
	}, nil
}

// Preview resolves and risk-assesses a date without fetching geometry
// or rendering.
func (p *Pipeline) Preview(date string) (*Preview, error) {
	parsed, err := p.parser.Parse(date)
	if err != nil {
		return nil, err
	}

	state := p.resolver.Resolve(parsed)

	risk, err := p.model.QuickRiskAssessment(parsed.Interval.Start, parsed.Interval.End)
	if err != nil {
		return nil, err
	}

	return &Preview{
		Interval:    parsed.Interval,
		SingleYear:  parsed.SingleYear,
		Midpoint:    parsed.Midpoint(),
		EntityCount: len(state.Entities),
		Dominant:    state.DominantNames(),
		Conflicts:   state.Conflicts,
		Risk:        risk,
		Assumptions: state.Assumptions,
	}, nil
}

// IsValidDate reports whether date parses under the configured bounds.
func (p *Pipeline) IsValidDate(date string) bool {
	return p.parser.IsValid(date)
}

// EntitiesForYear lists the known entities valid in a year.
func (p *Pipeline) EntitiesForYear(year int) []model.KnowledgeEntity {
	return p.resolver.EntitiesForYear(year)
}

func (p *Pipeline) printf(format string, args ...any) {
	if p.progress == nil {
		return
	}
	fmt.Fprintf(p.progress, format, args...)
}

func mapTitle(req GenerateRequest, interval model.YearInterval) string {
	switch {
	case req.Title != "":
		return req.Title
	case req.HideDate:
		return "Historical World Map"
	default:
		return fmt.Sprintf("Historical Map: %s", interval)
	}
}
