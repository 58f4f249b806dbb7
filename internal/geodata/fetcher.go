// Package geodata fetches real country boundary geometry from public
// sources: the Thenmap API for modern years and the historical-basemaps
// GeoJSON archive for earlier ones. All failures are reported as values
// so the boundary engine can fall back to synthetic shapes.
package geodata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ppiankov/chronomap/internal/cache"
	"github.com/ppiankov/chronomap/internal/model"
	"github.com/ppiankov/chronomap/internal/util"
	"github.com/ppiankov/chronomap/internal/worker"
)

// basemapYears are the reference years available in the
// historical-basemaps archive. Requests snap to the nearest one.
var basemapYears = []int{
	1492, 1530, 1650, 1715, 1783, 1815, 1880, 1900,
	1914, 1920, 1938, 1945, 1960, 1994, 2000,
}

// basemapFilePatterns are the filename conventions the archive has used
// over time. Tried in order until one answers.
var basemapFilePatterns = []string{
	"world_%d.geojson",
	"world_%dAD.geojson",
	"borders_%d.geojson",
}

// Fetcher retrieves boundary geometry for a year, caching results and
// rate-limiting per host.
type Fetcher struct {
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
	cfg        model.GeoDataConfig
	userAgent  string
	maxBytes   int64
}

// cachedPayload is what gets stored per year: enough to reconstruct a
// successful GeoDataResult without refetching.
type cachedPayload struct {
	Features   []model.GeoFeature `json:"features"`
	Source     string             `json:"source"`
	DateUsed   string             `json:"date_used"`
	ActualYear int                `json:"actual_year"`
}

// NewFetcher creates a fetcher from config. A nil cache disables
// caching entirely.
func NewFetcher(cfg *model.Config, c cache.Cache) *Fetcher {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}

	var robots *util.RobotsChecker
	if cfg.GeoData.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
		},
		cache:     c,
		cacheTTL:  cfg.Cache.DiskTTL,
		limiter:   worker.NewLimiter(cfg.GeoData.RequestsPerSecond, cfg.GeoData.Burst),
		robots:    robots,
		cfg:       cfg.GeoData,
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}
}

// FetchBoundaries retrieves boundary features for a year. It never
// returns an error: failures produce a result with Success=false and
// the reason in Error.
func (f *Fetcher) FetchBoundaries(ctx context.Context, year int) model.GeoDataResult {
	if cached, ok := f.loadCached(year); ok {
		return cached
	}

	var result model.GeoDataResult
	if year >= f.cfg.CutoffYear {
		result = f.fetchCurrent(ctx, year)
	} else {
		result = f.fetchBasemap(ctx, year)
	}

	if result.Success {
		f.storeCached(year, result)
	}

	return result
}

// fetchCurrent queries the Thenmap API, which serves per-date snapshots
// of modern borders.
func (f *Fetcher) fetchCurrent(ctx context.Context, year int) model.GeoDataResult {
	date := fmt.Sprintf("%d-01-01", year)
	url := fmt.Sprintf("%s/world-2/geo/%s?geo_props=name", f.cfg.CurrentAPIBase, date)

	body, err := f.get(ctx, url)
	if err != nil {
		return model.GeoDataResult{
			Source:        "thenmap",
			RequestedYear: year,
			Error:         err.Error(),
		}
	}

	features, err := ParseFeatureCollection(body)
	if err != nil {
		return model.GeoDataResult{
			Source:        "thenmap",
			RequestedYear: year,
			Error:         fmt.Sprintf("parse response: %s", err),
		}
	}

	return model.GeoDataResult{
		Success:       true,
		Features:      features,
		Source:        "thenmap",
		DateUsed:      date,
		RequestedYear: year,
		ActualYear:    year,
	}
}

// fetchBasemap downloads the archive file for the reference year
// nearest to the request, trying each known filename pattern.
func (f *Fetcher) fetchBasemap(ctx context.Context, year int) model.GeoDataResult {
	nearest := nearestBasemapYear(year)

	var lastErr error
	for _, pattern := range basemapFilePatterns {
		url := fmt.Sprintf("%s/%s", f.cfg.ArchiveBase, fmt.Sprintf(pattern, nearest))

		body, err := f.get(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}

		features, err := ParseFeatureCollection(body)
		if err != nil {
			lastErr = fmt.Errorf("parse response: %w", err)
			continue
		}

		return model.GeoDataResult{
			Success:       true,
			Features:      features,
			Source:        "historical-basemaps",
			DateUsed:      fmt.Sprintf("%d", nearest),
			RequestedYear: year,
			ActualYear:    nearest,
		}
	}

	errMsg := "no basemap file found"
	if lastErr != nil {
		errMsg = lastErr.Error()
	}
	return model.GeoDataResult{
		Source:        "historical-basemaps",
		RequestedYear: year,
		ActualYear:    nearest,
		Error:         errMsg,
	}
}

// get performs one rate-limited, robots-gated GET and returns the body.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx, url); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	if f.robots != nil && !f.robots.IsAllowed(ctx, url) {
		return nil, fmt.Errorf("disallowed by robots.txt: %s", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json, application/geo+json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}

func (f *Fetcher) loadCached(year int) (model.GeoDataResult, bool) {
	if f.cache == nil {
		return model.GeoDataResult{}, false
	}

	data, ok := f.cache.Get(cache.YearKey(year))
	if !ok {
		return model.GeoDataResult{}, false
	}

	var payload cachedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		// Corrupt entry; refetch.
		_ = f.cache.Delete(cache.YearKey(year))
		return model.GeoDataResult{}, false
	}

	return model.GeoDataResult{
		Success:       true,
		Features:      payload.Features,
		Source:        payload.Source,
		DateUsed:      payload.DateUsed,
		RequestedYear: year,
		ActualYear:    payload.ActualYear,
		Cached:        true,
	}, true
}

// storeCached writes are best-effort: a full disk never fails a fetch.
func (f *Fetcher) storeCached(year int, result model.GeoDataResult) {
	if f.cache == nil {
		return
	}

	data, err := json.Marshal(cachedPayload{
		Features:   result.Features,
		Source:     result.Source,
		DateUsed:   result.DateUsed,
		ActualYear: result.ActualYear,
	})
	if err != nil {
		return
	}

	_ = f.cache.Set(cache.YearKey(year), data, f.cacheTTL)
}

// nearestBasemapYear picks the archive reference year with the smallest
// absolute distance to the request. Ties resolve to the earlier year.
func nearestBasemapYear(year int) int {
	nearest := basemapYears[0]
	best := abs(year - nearest)

	for _, candidate := range basemapYears[1:] {
		if d := abs(year - candidate); d < best {
			best = d
			nearest = candidate
		}
	}

	return nearest
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
